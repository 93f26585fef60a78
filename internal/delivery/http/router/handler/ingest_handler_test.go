package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "beacon/internal/domain/errors"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestIngestHandler(t *testing.T) (*IngestHandler, *mockUC.MockIngestUsecase) {
	ingestUC := mockUC.NewMockIngestUsecase(t)
	h := NewIngestHandler(IngestHandlerParams{
		IngestUC: ingestUC,
		Logger:   slog.New(slog.DiscardHandler),
	})

	return h, ingestUC
}

func newIngestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/ingest", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestIngestHandler_Ingest_Success(t *testing.T) {
	h, ingestUC := createTestIngestHandler(t)

	body := `{
		"deviceInfo": {"serialNumber": "SER123", "deviceId": "DEV123"},
		"moduleData": {"inventory": {"deviceName": "host-a"}},
		"metadata": [{"type": "info", "message": "check-in"}]
	}`

	ingestUC.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*usecase.IngestPayload")).
		Run(func(_ context.Context, payload *usecase.IngestPayload) {
			assert.Equal(t, "SER123", payload.DeviceInfo.SerialNumber)
			assert.Equal(t, "DEV123", payload.DeviceInfo.DeviceID)
			assert.Len(t, payload.ModuleData, 1)
			assert.Len(t, payload.Events, 1)
		}).
		Return(&usecase.IngestSummary{
			Status:           "ok",
			DeviceID:         "DEV123",
			SerialNumber:     "SER123",
			ModulesProcessed: []string{"inventory"},
			EventsProcessed:  1,
		}, nil)

	c, rec := newIngestContext(body)
	require.NoError(t, h.Ingest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"modulesProcessed":["inventory"]`)
}

func TestIngestHandler_Ingest_MissingIdentity(t *testing.T) {
	h, ingestUC := createTestIngestHandler(t)

	ingestUC.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*usecase.IngestPayload")).
		Return(nil, domainerrors.ErrMissingDeviceIdentity)

	c, rec := newIngestContext(`{"deviceInfo": {"deviceId": "DEV123"}}`)
	require.NoError(t, h.Ingest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_DEVICE_IDENTITY")
}

func TestIngestHandler_Ingest_IdentityConflict(t *testing.T) {
	h, ingestUC := createTestIngestHandler(t)

	ingestUC.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*usecase.IngestPayload")).
		Return(nil, domainerrors.ErrIdentityConflict.WithDetails("stored identity differs"))

	c, rec := newIngestContext(`{"deviceInfo": {"serialNumber": "SER123", "deviceId": "DEV123"}}`)
	require.NoError(t, h.Ingest(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_IDENTITY_CONFLICT")
	assert.Contains(t, rec.Body.String(), "stored identity differs")
}

func TestIngestHandler_Ingest_MalformedBody(t *testing.T) {
	h, _ := createTestIngestHandler(t)

	c, rec := newIngestContext(`{"deviceInfo": `)
	require.NoError(t, h.Ingest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
