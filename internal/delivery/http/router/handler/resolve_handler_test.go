package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/identifier"
	mockUC "beacon/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestResolveHandler(t *testing.T) (*ResolveHandler, *mockUC.MockResolveUsecase) {
	resolveUC := mockUC.NewMockResolveUsecase(t)
	h := NewResolveHandler(ResolveHandlerParams{
		ResolveUC: resolveUC,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return h, resolveUC
}

func newResolveContext(identifier string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/resolve/"+identifier, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/resolve/:identifier")
	c.SetParamNames("identifier")
	c.SetParamValues(identifier)

	return c, rec
}

func TestResolveHandler_Resolve_FoundRedirects(t *testing.T) {
	h, resolveUC := createTestResolveHandler(t)

	resolveUC.EXPECT().
		Resolve(mock.Anything, "A004733").
		Return(&entity.Resolution{
			Found:        true,
			SerialNumber: "0F33V9G25083HJ",
			Identifier:   "A004733",
			Kind:         identifier.KindAssetTag,
		})

	c, rec := newResolveContext("A004733")
	require.NoError(t, h.Resolve(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/device/0F33V9G25083HJ", rec.Header().Get(echo.HeaderLocation))
}

func TestResolveHandler_Resolve_NotFound(t *testing.T) {
	h, resolveUC := createTestResolveHandler(t)

	resolveUC.EXPECT().
		Resolve(mock.Anything, "UNKNOWN").
		Return(&entity.Resolution{
			Found:      false,
			Identifier: "UNKNOWN",
			Kind:       identifier.KindSerialNumber,
		})

	c, rec := newResolveContext("UNKNOWN")
	require.NoError(t, h.Resolve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEVICE_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"identifier_type":"serialNumber"`)
}

func TestResolveHandler_Resolve_DecodesEscapedIdentifier(t *testing.T) {
	h, resolveUC := createTestResolveHandler(t)

	resolveUC.EXPECT().
		Resolve(mock.Anything, "Rod Christiansen").
		Return(&entity.Resolution{
			Found:        true,
			SerialNumber: "0F33V9G25083HJ",
			Identifier:   "Rod Christiansen",
			Kind:         identifier.KindDeviceName,
		})

	c, rec := newResolveContext("Rod%20Christiansen")
	require.NoError(t, h.Resolve(c))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
