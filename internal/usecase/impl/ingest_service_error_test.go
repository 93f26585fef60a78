package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// appErrorCode extracts the business error code from an AppError chain.
func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestIngestService_Ingest_MissingIdentity(t *testing.T) {
	fx := createTestIngestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload *usecase.IngestPayload
	}{
		{name: "nil payload", payload: nil},
		{
			name:    "missing serial number",
			payload: &usecase.IngestPayload{DeviceInfo: usecase.DeviceInfo{DeviceID: "DEV123"}},
		},
		{
			name:    "missing device id",
			payload: &usecase.IngestPayload{DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123"}},
		},
		{
			name: "whitespace-only serial number",
			payload: &usecase.IngestPayload{
				DeviceInfo: usecase.DeviceInfo{SerialNumber: "   ", DeviceID: "DEV123"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No transaction expectation: validation must reject the
			// payload before any storage work starts.
			summary, err := fx.service.Ingest(ctx, tt.payload)
			require.Error(t, err)
			assert.Nil(t, summary)
			assert.Equal(t, "MISSING_DEVICE_IDENTITY", appErrorCode(t, err))
		})
	}
}

func TestIngestService_Ingest_IdentityConflict_StoredPairMismatch(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
	}

	fx.expectTransaction(ctx)

	// The submitted device ID is already paired with a different serial.
	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(&entity.Device{SerialNumber: "OTHER-SERIAL", DeviceID: "DEV123"}, nil)

	summary, err := fx.service.Ingest(ctx, payload)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, "DEVICE_IDENTITY_CONFLICT", appErrorCode(t, err))
}

func TestIngestService_Ingest_IdentityConflict_ConcurrentCreate(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(nil, repository.ErrDeviceNotFound)

	// A concurrent registration won the insert race; the unique constraint
	// violation surfaces as a conflict, not a 500.
	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDeviceIdentityTaken)

	summary, err := fx.service.Ingest(ctx, payload)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, "DEVICE_IDENTITY_CONFLICT", appErrorCode(t, err))
}

func TestIngestService_Ingest_StorageFailureMapsToIngestFailed(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
		ModuleData: map[string]map[string]any{
			"inventory": {"deviceName": "host-a"},
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
		Return(errors.New("connection reset"))

	// The publisher must stay silent: nothing committed.
	summary, err := fx.service.Ingest(ctx, payload)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, "INGEST_FAILED", appErrorCode(t, err))
}

func TestIngestService_Ingest_LookupFailureMapsToIngestFailed(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
	}

	fx.expectTransaction(ctx)

	fx.deviceRepo.EXPECT().
		FindByIdentity(ctx, "SER123", "DEV123").
		Return(nil, errors.New("db unavailable"))

	summary, err := fx.service.Ingest(ctx, payload)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, "INGEST_FAILED", appErrorCode(t, err))
}

func TestIngestService_Ingest_EventInsertFailureRollsBack(t *testing.T) {
	fx := createTestIngestService(t)

	ctx := context.Background()
	payload := &usecase.IngestPayload{
		DeviceInfo: usecase.DeviceInfo{SerialNumber: "SER123", DeviceID: "DEV123"},
		Events: []usecase.EventInput{
			{Type: "error", Message: "boom"},
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
		Return(errors.New("insert failed"))

	summary, err := fx.service.Ingest(ctx, payload)
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, "INGEST_FAILED", appErrorCode(t, err))
}
