package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements InvalidationPublisher by POSTing events to a
// local HTTP endpoint. It mimics the Pub/Sub push-message envelope so the
// receiving side can run the same handler in development and production.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// pushMessage mirrors the Google Pub/Sub push delivery format.
type pushMessage struct {
	Message struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that delivers invalidation
// events to the given endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.InvalidationPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// PublishInvalidation delivers an invalidation event to the local endpoint
func (p *localHTTPPublisher) PublishInvalidation(ctx context.Context, event *service.InvalidationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var msg pushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = map[string]string{
		"serial_number": event.SerialNumber,
		"device_id":     event.DeviceID,
	}
	msg.Message.MessageID = event.RequestID
	msg.Subscription = "local"

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("local publisher endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Invalidation published",
		slog.String("serial_number", event.SerialNumber),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no persistent connections worth draining.
func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
