package repository

import (
	"context"

	"beacon/internal/domain/entity"
)

// DeviceDirectory provides a read-only snapshot of every known device with
// its identity fields and module documents, as consumed by the identity
// resolver. Implementations perform one full fetch per call and keep no
// cache; callers bound the fetch with a context timeout.
type DeviceDirectory interface {
	Snapshot(ctx context.Context) ([]*entity.DirectoryEntry, error)
}
