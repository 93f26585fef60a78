// Package service defines interfaces for core, stateless domain logic and
// outbound collaborators.
package service

import (
	"context"
	"time"
)

// InvalidationEvent tells downstream caches that a device's stored telemetry
// changed and any cached views of it are stale.
type InvalidationEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	SerialNumber string    `json:"serial_number"`
	DeviceID     string    `json:"device_id"`
	Modules      []string  `json:"modules"` // Module names touched by the commit
	OccurredAt   time.Time `json:"occurred_at"`
}

// InvalidationPublisher is the best-effort, fire-and-forget notification sink
// signalled after a successful ingestion commit. Publishing is at-least-once
// and never part of the storage transaction: a publish failure is logged and
// ignored, never rolled back into the commit.
type InvalidationPublisher interface {
	// PublishInvalidation publishes one invalidation event.
	PublishInvalidation(ctx context.Context, event *InvalidationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
