package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"beacon/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const defaultNATSSubject = "beacon.invalidation"

// natsPublisher implements InvalidationPublisher over a NATS connection.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to the given NATS server and returns a publisher
// delivering invalidation events on the configured subject.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.InvalidationPublisher, error) {
	if subject == "" {
		subject = defaultNATSSubject
	}

	conn, err := nats.Connect(url,
		nats.Name("beacon-invalidation"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	logger.Info("NATS publisher initialized",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}, nil
}

// PublishInvalidation publishes an invalidation event on the NATS subject
func (p *natsPublisher) PublishInvalidation(ctx context.Context, event *service.InvalidationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return errors.Wrap(err, "failed to publish to NATS")
	}

	// Publish is fire-and-forget; flush within the caller's deadline so a
	// dead connection surfaces as an error instead of silence.
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	p.logger.Debug("[NATSPubSub] Invalidation published",
		slog.String("serial_number", event.SerialNumber),
		slog.String("subject", p.subject),
	)

	return nil
}

// Close drains the NATS connection.
func (p *natsPublisher) Close() error {
	if p.conn != nil && !p.conn.IsClosed() {
		p.conn.Close()
	}

	return nil
}
