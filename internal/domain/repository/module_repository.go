package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnknownModule is returned when a record names a module absent from the
// module catalog. Callers are expected to filter against the catalog first.
var ErrUnknownModule = errors.New("unknown telemetry module")

// ModuleRepository defines per-module telemetry document operations.
type ModuleRepository interface {
	// Upsert writes the record into the module's storage table, creating the
	// row on first sight and fully replacing the stored document otherwise
	// (latest-wins, at most one row per device per module).
	Upsert(ctx context.Context, record *entity.ModuleRecord) error
}
