// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/catalog"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const statusOK = "ok"

// ingestService implements the IngestUsecase interface.
type ingestService struct {
	txManager repository.TransactionManager
	publisher service.InvalidationPublisher
	logger    *slog.Logger
}

// IngestServiceParams holds dependencies for the ingest service, injected by Fx.
type IngestServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.InvalidationPublisher
	Logger    *slog.Logger
}

// NewIngestService is the constructor for ingestService.
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	return &ingestService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ingestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest commits one unified payload as a single atomic unit: identity
// constraint check, device upsert, module fan-out, and event insert either
// all succeed or all roll back. The invalidation signal is emitted only
// after a successful commit and never affects the transaction outcome.
func (srv *ingestService) Ingest(ctx context.Context, payload *usecase.IngestPayload) (*usecase.IngestSummary, error) {
	if payload == nil {
		return nil, domainerrors.ErrMissingDeviceIdentity
	}

	serial := strings.TrimSpace(payload.DeviceInfo.SerialNumber)
	deviceID := strings.TrimSpace(payload.DeviceInfo.DeviceID)
	if serial == "" || deviceID == "" {
		return nil, domainerrors.ErrMissingDeviceIdentity
	}

	now := time.Now().UTC()
	summary := &usecase.IngestSummary{
		Status:           statusOK,
		DeviceID:         deviceID,
		SerialNumber:     serial,
		ModulesProcessed: []string{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.upsertDevice(ctx, repoFactory.DeviceRepo(), &payload.DeviceInfo, serial, deviceID, now); err != nil {
			return err
		}

		processed, skipped, err := srv.fanOutModules(ctx, repoFactory.ModuleRepo(), deviceID, payload.ModuleData, now)
		if err != nil {
			return err
		}
		summary.ModulesProcessed = processed
		summary.ModulesSkipped = skipped

		accepted, rejected, err := srv.storeEvents(ctx, repoFactory.EventRepo(), deviceID, payload.Events, now)
		if err != nil {
			return err
		}
		summary.EventsProcessed = accepted
		summary.EventsRejected = rejected

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Ingestion transaction failed",
			slog.String("serialNumber", serial),
			slog.String("deviceId", deviceID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrIngestFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Debug("Ingestion committed",
		slog.String("serialNumber", serial),
		slog.Int("modulesProcessed", len(summary.ModulesProcessed)),
		slog.Int("eventsProcessed", summary.EventsProcessed),
		slog.Int("eventsRejected", summary.EventsRejected),
	)

	srv.publishInvalidation(ctx, summary)

	return summary, nil
}

// upsertDevice enforces the identity invariant and creates or refreshes the
// device row. Serial number and device ID are never altered on update; the
// storage-level uniqueness constraints on both columns back-stop concurrent
// first-time registrations that pass the pre-check simultaneously.
func (srv *ingestService) upsertDevice(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	info *usecase.DeviceInfo,
	serial, deviceID string,
	now time.Time,
) error {
	existing, err := deviceRepo.FindByIdentity(ctx, serial, deviceID)
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		device := &entity.Device{
			SerialNumber:  serial,
			DeviceID:      deviceID,
			Name:          info.Name,
			AssetTag:      info.AssetTag,
			Status:        deviceStatus(info.Status),
			ClientVersion: info.ClientVersion,
			LastSeen:      now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := deviceRepo.Create(ctx, device); err != nil {
			if errors.Is(err, repository.ErrDeviceIdentityTaken) {
				return domainerrors.ErrIdentityConflict.WithDetails(
					fmt.Sprintf("identity (%s, %s) collided with a concurrent registration", serial, deviceID))
			}

			return errors.Wrap(err, "failed to create device")
		}

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to look up device identity")
	default:
		if existing.SerialNumber != serial || existing.DeviceID != deviceID {
			return domainerrors.ErrIdentityConflict.WithDetails(fmt.Sprintf(
				"stored identity (%s, %s) does not match submitted identity (%s, %s)",
				existing.SerialNumber, existing.DeviceID, serial, deviceID))
		}

		device := &entity.Device{
			SerialNumber:  serial,
			DeviceID:      deviceID,
			Name:          info.Name,
			AssetTag:      info.AssetTag,
			Status:        deviceStatus(info.Status),
			ClientVersion: info.ClientVersion,
			LastSeen:      now,
			UpdatedAt:     now,
		}
		if err := deviceRepo.UpdateMutable(ctx, device); err != nil {
			return errors.Wrap(err, "failed to refresh device")
		}

		return nil
	}
}

// fanOutModules writes one row per recognized (device, module) pair.
// Unrecognized module names and structurally empty documents are skipped
// without failing the batch; a storage failure aborts the transaction.
func (srv *ingestService) fanOutModules(
	ctx context.Context,
	moduleRepo repository.ModuleRepository,
	deviceID string,
	moduleData map[string]map[string]any,
	now time.Time,
) (processed, skipped []string, err error) {
	processed = []string{}

	names := make([]string, 0, len(moduleData))
	for name := range moduleData {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !catalog.Recognized(name) {
			srv.log(ctx).Warn("Skipping unrecognized telemetry module",
				slog.String("module", name),
				slog.String("deviceId", deviceID),
			)
			skipped = append(skipped, name)

			continue
		}

		document := moduleData[name]
		if len(document) == 0 {
			srv.log(ctx).Warn("Skipping structurally empty module document",
				slog.String("module", name),
				slog.String("deviceId", deviceID),
			)
			skipped = append(skipped, name)

			continue
		}

		record := &entity.ModuleRecord{
			DeviceID:    deviceID,
			Module:      name,
			Document:    document,
			CollectedAt: now,
			UpdatedAt:   now,
		}
		if err := moduleRepo.Upsert(ctx, record); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to upsert module %s", name)
		}

		processed = append(processed, name)
	}

	return processed, skipped, nil
}

// storeEvents normalizes event types against the closed severity set, drops
// out-of-set entries, and inserts the survivors in one batch. Rejections are
// counted but never fail the batch.
func (srv *ingestService) storeEvents(
	ctx context.Context,
	eventRepo repository.EventRepository,
	deviceID string,
	inputs []usecase.EventInput,
	now time.Time,
) (accepted, rejected int, err error) {
	events := make([]*entity.Event, 0, len(inputs))
	for _, input := range inputs {
		eventType, ok := entity.NormalizeEventType(input.Type)
		if !ok {
			srv.log(ctx).Warn("Dropping event with invalid type",
				slog.String("type", input.Type),
				slog.String("deviceId", deviceID),
			)
			rejected++

			continue
		}

		timestamp := input.Timestamp
		if timestamp.IsZero() {
			timestamp = now
		}

		events = append(events, &entity.Event{
			ID:        uuid.New(),
			DeviceID:  deviceID,
			Type:      eventType,
			Message:   input.Message,
			Details:   input.Details,
			Timestamp: timestamp,
		})
	}

	if len(events) > 0 {
		if err := eventRepo.InsertBatch(ctx, events); err != nil {
			return 0, rejected, errors.Wrap(err, "failed to insert events")
		}
	}

	return len(events), rejected, nil
}

// publishInvalidation emits the best-effort cache invalidation signal after
// commit. Failures are logged and ignored.
func (srv *ingestService) publishInvalidation(ctx context.Context, summary *usecase.IngestSummary) {
	if srv.publisher == nil {
		return
	}

	event := &service.InvalidationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		SerialNumber: summary.SerialNumber,
		DeviceID:     summary.DeviceID,
		Modules:      summary.ModulesProcessed,
		OccurredAt:   time.Now().UTC(),
	}
	if err := srv.publisher.PublishInvalidation(ctx, event); err != nil {
		srv.log(ctx).Warn("Cache invalidation publish failed",
			slog.String("serialNumber", summary.SerialNumber),
			slog.Any("error", err),
		)
	}
}

// deviceStatus applies the default status for payloads that omit it.
func deviceStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return "active"
	}

	return status
}
