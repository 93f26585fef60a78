package repository

import (
	"context"

	"beacon/internal/domain/entity"
)

// EventRepository defines device event persistence. Events are insert-only.
type EventRepository interface {
	// InsertBatch stores the given events in one statement. Callers must
	// have validated event types beforehand; the store assumes membership
	// in the closed severity set.
	InsertBatch(ctx context.Context, events []*entity.Event) error
}
