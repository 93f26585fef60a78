package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingestServiceFixtures holds all test dependencies for ingest service tests.
type ingestServiceFixtures struct {
	service    usecase.IngestUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	deviceRepo *mockRepo.MockDeviceRepository
	moduleRepo *mockRepo.MockModuleRepository
	eventRepo  *mockRepo.MockEventRepository
	publisher  *mockSvc.MockInvalidationPublisher
}

func createTestIngestService(t *testing.T) ingestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	moduleRepo := mockRepo.NewMockModuleRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	publisher := mockSvc.NewMockInvalidationPublisher(t)

	factory.EXPECT().DeviceRepo().Return(deviceRepo).Maybe()
	factory.EXPECT().ModuleRepo().Return(moduleRepo).Maybe()
	factory.EXPECT().EventRepo().Return(eventRepo).Maybe()

	srv := NewIngestService(IngestServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return ingestServiceFixtures{
		service:    srv,
		txManager:  txManager,
		factory:    factory,
		deviceRepo: deviceRepo,
		moduleRepo: moduleRepo,
		eventRepo:  eventRepo,
		publisher:  publisher,
	}
}

// expectTransaction makes the transaction manager run the callback against
// the fixture's mock repository factory, mirroring the real commit path.
func (fx ingestServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestIngestService_Ingest_NewDevice(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{
			SerialNumber:  "0F33V9G25083HJ",
			DeviceID:      "79349310-287D-8166-52FC-0644E27378F7",
			Name:          "build-runner-07",
			AssetTag:      "A004733",
			ClientVersion: "5.2.1",
		},
		ModuleData: map[string]map[string]any{
			"inventory": {"deviceName": "build-runner-07"},
			"hardware":  {"cpu": "arm64"},
		},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "0F33V9G25083HJ", "79349310-287D-8166-52FC-0644E27378F7").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "0F33V9G25083HJ", device.SerialNumber)
			assert.Equal(t, "79349310-287D-8166-52FC-0644E27378F7", device.DeviceID)
			assert.Equal(t, "active", device.Status)
			assert.False(t, device.LastSeen.IsZero())
		}).
		Return(nil)

	fx.moduleRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ModuleRecord")).
		Return(nil).
		Twice()

	fx.publisher.EXPECT().
		PublishInvalidation(ctx, mock.AnythingOfType("*service.InvalidationEvent")).
		Return(nil)

	summary, err := fx.service.Ingest(ctx, payload)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "ok", summary.Status)
	assert.Equal(t, "0F33V9G25083HJ", summary.SerialNumber)
	assert.Equal(t, []string{"hardware", "inventory"}, summary.ModulesProcessed)
	assert.Empty(t, summary.ModulesSkipped)
	assert.Zero(t, summary.EventsProcessed)
}

func TestIngestService_Ingest_ExistingDeviceRefresh(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	existing := &entity.Device{
		SerialNumber: "SER123",
		DeviceID:     "DEV123",
		Name:         "old-name",
		Status:       "active",
	}
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{
			SerialNumber: "SER123",
			DeviceID:     "DEV123",
			Name:         "new-name",
			Status:       "maintenance",
		},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpdateMutable(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "new-name", device.Name)
			assert.Equal(t, "maintenance", device.Status)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishInvalidation(ctx, mock.AnythingOfType("*service.InvalidationEvent")).
		Return(nil)

	summary, err := fx.service.Ingest(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "ok", summary.Status)
	assert.Empty(t, summary.ModulesProcessed)
}

func TestIngestService_Ingest_ModuleFanOutSkipsUnknownAndEmpty(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
		ModuleData: map[string]map[string]any{
			"inventory": {"deviceName": "host-a"},
			"bogus":     {"anything": true},
			"network":   {},
		},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(&entity.Device{SerialNumber: "SER123", DeviceID: "DEV123"}, nil)
	fx.deviceRepo.EXPECT().
		UpdateMutable(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.moduleRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ModuleRecord")).
		Run(func(_ context.Context, record *entity.ModuleRecord) {
			assert.Equal(t, "inventory", record.Module)
			assert.Equal(t, "DEV123", record.DeviceID)
		}).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		PublishInvalidation(ctx, mock.AnythingOfType("*service.InvalidationEvent")).
		Return(nil)

	summary, err := fx.service.Ingest(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory"}, summary.ModulesProcessed)
	assert.ElementsMatch(t, []string{"bogus", "network"}, summary.ModulesSkipped)
}

func TestIngestService_Ingest_EventValidation(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
		Events: []usecase.EventInput{
			{Type: "success", Message: "backup completed"},
			{Type: "WARNING", Message: "disk almost full"},
			{Type: "critical", Message: "out of set"},
			{Type: "", Message: "missing type"},
			{Type: "info", Message: "check-in", Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(&entity.Device{SerialNumber: "SER123", DeviceID: "DEV123"}, nil)
	fx.deviceRepo.EXPECT().
		UpdateMutable(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	fx.eventRepo.EXPECT().
		InsertBatch(ctx, mock.AnythingOfType("[]*entity.Event")).
		Run(func(_ context.Context, events []*entity.Event) {
			require.Len(t, events, 3)
			assert.Equal(t, entity.EventTypeSuccess, events[0].Type)
			assert.Equal(t, entity.EventTypeWarning, events[1].Type)
			assert.Equal(t, entity.EventTypeInfo, events[2].Type)
			for _, event := range events {
				assert.NotEqual(t, "", event.ID.String())
				assert.Equal(t, "DEV123", event.DeviceID)
				assert.False(t, event.Timestamp.IsZero())
			}
			// Explicit timestamps are preserved, missing ones are filled in.
			assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), events[2].Timestamp)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishInvalidation(ctx, mock.AnythingOfType("*service.InvalidationEvent")).
		Return(nil)

	summary, err := fx.service.Ingest(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.EventsProcessed)
	assert.Equal(t, 2, summary.EventsRejected)
}

func TestIngestService_Ingest_PublisherFailureIgnored(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
		ModuleData: map[string]map[string]any{
			"system": {"os": "sequoia"},
		},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(&entity.Device{SerialNumber: "SER123", DeviceID: "DEV123"}, nil)
	fx.deviceRepo.EXPECT().
		UpdateMutable(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)
	fx.moduleRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ModuleRecord")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishInvalidation(ctx, mock.AnythingOfType("*service.InvalidationEvent")).
		Run(func(_ context.Context, event *service.InvalidationEvent) {
			assert.Equal(t, "SER123", event.SerialNumber)
			assert.Equal(t, []string{"system"}, event.Modules)
		}).
		Return(assert.AnError)

	summary, err := fx.service.Ingest(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "ok", summary.Status)
}
