// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IngestHandlerParams holds dependencies for IngestHandler, injected by Fx.
type IngestHandlerParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// IngestHandler holds dependencies for telemetry ingestion handlers
type IngestHandler struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// NewIngestHandler is the constructor for IngestHandler
func NewIngestHandler(params IngestHandlerParams) *IngestHandler {
	return &IngestHandler{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}
}

// Ingest handles one unified telemetry submission. Identity validation lives
// in the use case so a missing serial number or device ID maps to
// MISSING_DEVICE_IDENTITY rather than a generic binding error.
func (h *IngestHandler) Ingest(c echo.Context) error {
	var payload usecase.IngestPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingest payload")
	}

	summary, err := h.ingestUC.Ingest(c.Request().Context(), &payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
