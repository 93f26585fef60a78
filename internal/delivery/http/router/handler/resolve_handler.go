package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResolveHandlerParams holds dependencies for ResolveHandler, injected by Fx.
type ResolveHandlerParams struct {
	fx.In

	ResolveUC usecase.ResolveUsecase
	Logger    *slog.Logger
}

// ResolveHandler holds dependencies for identifier resolution handlers
type ResolveHandler struct {
	resolveUC usecase.ResolveUsecase
	logger    *slog.Logger
}

// NewResolveHandler is the constructor for ResolveHandler
func NewResolveHandler(params ResolveHandlerParams) *ResolveHandler {
	return &ResolveHandler{
		resolveUC: params.ResolveUC,
		logger:    params.Logger,
	}
}

// Resolve maps a free-form identifier to a canonical device. A hit redirects
// to the device page; a miss returns 404 with the resolution outcome so
// callers can see how the identifier was classified.
func (h *ResolveHandler) Resolve(c echo.Context) error {
	rawIdentifier, err := url.PathUnescape(c.Param("identifier"))
	if err != nil {
		return response.BadRequest(c, "INVALID_IDENTIFIER", "Identifier is not valid URL-encoded text")
	}

	resolution := h.resolveUC.Resolve(c.Request().Context(), rawIdentifier)
	if !resolution.Found {
		return response.NotFoundWithDetails(c, "DEVICE_NOT_FOUND", "No device matched the identifier", resolution)
	}

	return c.Redirect(http.StatusFound, "/device/"+url.PathEscape(resolution.SerialNumber))
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
