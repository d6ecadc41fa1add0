package ports

import (
	"context"

	"github.com/entarch/systems-catalog/internal/core/domain"
)

// SystemRepository is the persistence contract for catalog entries. The
// implementation is the sole owner of the backing document; every method
// returns copies, never references into stored state.
type SystemRepository interface {
	// List returns all entries in insertion order. An empty catalog yields
	// an empty slice, not an error.
	List(ctx context.Context) ([]domain.System, error)
	// Get returns the entry whose id matches exactly, or domain.ErrSystemNotFound.
	Get(ctx context.Context, id string) (domain.System, error)
	// Create assigns the id and both timestamps, appends the entry, and
	// returns the stored copy.
	Create(ctx context.Context, sys domain.System) (domain.System, error)
	// Update merges the patch onto the existing entry, refreshes updated_at,
	// and returns the updated copy. ID and created_at are never altered.
	Update(ctx context.Context, id string, patch domain.SystemPatch) (domain.System, error)
	// Delete removes the entry, or reports domain.ErrSystemNotFound.
	Delete(ctx context.Context, id string) error
}
