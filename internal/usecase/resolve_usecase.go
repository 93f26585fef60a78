package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// ResolveUsecase resolves a free-form identifier to a canonical device.
//
// The contract is deliberately exception-free: directory failures, timeouts,
// and genuine no-matches all come back as Found == false. Callers wanting
// repeat-lookup throttling or caching must provide it themselves.
type ResolveUsecase interface {
	Resolve(ctx context.Context, rawIdentifier string) *entity.Resolution
}
