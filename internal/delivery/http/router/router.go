// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IngestHandler  *handler.IngestHandler
	ResolveHandler *handler.ResolveHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	ingestHandler  *handler.IngestHandler
	resolveHandler *handler.ResolveHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingestHandler:  params.IngestHandler,
		resolveHandler: params.ResolveHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/v1")
	{
		apiV1.POST("/ingest", r.ingestHandler.Ingest)
		apiV1.GET("/resolve/:identifier", r.resolveHandler.Resolve)
	}
}
