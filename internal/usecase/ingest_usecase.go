// Package usecase defines the application's business-logic interfaces.
package usecase

import (
	"context"
	"time"
)

// DeviceInfo is the identity block of a unified telemetry payload.
// SerialNumber and DeviceID are mandatory; everything else is optional
// metadata refreshed on each ingestion.
type DeviceInfo struct {
	SerialNumber  string `json:"serialNumber"`
	DeviceID      string `json:"deviceId"`
	Name          string `json:"name,omitempty"`
	AssetTag      string `json:"assetTag,omitempty"`
	Status        string `json:"status,omitempty"`
	ClientVersion string `json:"clientVersion,omitempty"`
}

// EventInput is one event entry submitted alongside telemetry.
type EventInput struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp,omitempty"`
}

// IngestPayload is the unified payload one endpoint submits per cycle:
// identity, one document per telemetry module, and event entries.
type IngestPayload struct {
	DeviceInfo DeviceInfo                `json:"deviceInfo"`
	ModuleData map[string]map[string]any `json:"moduleData,omitempty"`
	Events     []EventInput              `json:"metadata,omitempty"`
}

// IngestSummary reports per-batch acceptance so callers can detect partial
// telemetry without inspecting storage: which modules were stored, which were
// skipped, and how many events survived validation.
type IngestSummary struct {
	Status           string   `json:"status"`
	DeviceID         string   `json:"deviceId"`
	SerialNumber     string   `json:"serialNumber"`
	ModulesProcessed []string `json:"modulesProcessed"`
	ModulesSkipped   []string `json:"modulesSkipped,omitempty"`
	EventsProcessed  int      `json:"eventsProcessed"`
	EventsRejected   int      `json:"eventsRejected"`
}

// IngestUsecase coordinates one atomic ingestion per payload: identity
// constraint check, device upsert, module fan-out, and event insert all
// commit or roll back together.
type IngestUsecase interface {
	Ingest(ctx context.Context, payload *IngestPayload) (*IngestSummary, error)
}
