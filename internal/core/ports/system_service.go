package ports

import (
	"context"

	"github.com/entarch/systems-catalog/internal/core/domain"
)

// StewardInput holds one steward's contact details.
type StewardInput struct {
	Name  string
	Email string
}

// CreateSystemInput carries all data needed to create a catalog entry.
// Status is optional; empty means "active".
type CreateSystemInput struct {
	Name             string
	Description      string
	BusinessSteward  StewardInput
	SecuritySteward  StewardInput
	TechnicalSteward StewardInput
	Status           string
}

// UpdateSystemInput is a partial update: nil fields leave the stored value
// unchanged. A supplied steward replaces that steward whole.
type UpdateSystemInput struct {
	Name             *string
	Description      *string
	BusinessSteward  *StewardInput
	SecuritySteward  *StewardInput
	TechnicalSteward *StewardInput
	Status           *string
}

// ListSystemsFilter narrows the list operation. Zero values mean no filter.
type ListSystemsFilter struct {
	Status string // exact status match
	Search string // case-insensitive substring over name, description, steward names
}

// SystemService defines the catalog use-cases consumed by the HTTP layer.
type SystemService interface {
	CreateSystem(ctx context.Context, input CreateSystemInput) (*domain.System, error)
	GetSystem(ctx context.Context, id string) (*domain.System, error)
	ListSystems(ctx context.Context, filter ListSystemsFilter) ([]domain.System, error)
	UpdateSystem(ctx context.Context, id string, input UpdateSystemInput) (*domain.System, error)
	DeleteSystem(ctx context.Context, id string) error
}
