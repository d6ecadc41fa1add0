package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/entarch/systems-catalog/internal/api/metrics"
	"github.com/entarch/systems-catalog/internal/core/domain"
	"github.com/entarch/systems-catalog/internal/core/ports"
)

// CatalogService implements the catalog use-cases on top of a SystemRepository.
type CatalogService struct {
	repo   ports.SystemRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.SystemRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// CreateSystem stores a new catalog entry. Input is assumed validated by the
// transport layer; the repository assigns id and timestamps. An empty status
// defaults to active — on create only, never on update.
func (s *CatalogService) CreateSystem(ctx context.Context, input ports.CreateSystemInput) (*domain.System, error) {
	status := domain.SystemStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusActive
	}

	created, err := s.repo.Create(ctx, domain.System{
		Name:             input.Name,
		Description:      input.Description,
		BusinessSteward:  toSteward(input.BusinessSteward),
		SecuritySteward:  toSteward(input.SecuritySteward),
		TechnicalSteward: toSteward(input.TechnicalSteward),
		Status:           status,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create system")
		return nil, err
	}

	metrics.SystemsCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.logger.Info().Str("system_id", created.ID).Str("name", created.Name).Msg("system created")
	return &created, nil
}

// GetSystem returns a single entry by id.
func (s *CatalogService) GetSystem(ctx context.Context, id string) (*domain.System, error) {
	sys, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &sys, nil
}

// ListSystems returns entries in insertion order, narrowed by the optional
// status and search filters. Filtering is a linear scan; catalog sizes make
// anything fancier pointless.
func (s *CatalogService) ListSystems(ctx context.Context, filter ports.ListSystemsFilter) ([]domain.System, error) {
	systems, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list systems")
		return nil, err
	}

	if filter.Status == "" && filter.Search == "" {
		return systems, nil
	}

	matched := make([]domain.System, 0, len(systems))
	for _, sys := range systems {
		if filter.Status != "" && string(sys.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !matchesSearch(sys, filter.Search) {
			continue
		}
		matched = append(matched, sys)
	}
	return matched, nil
}

// UpdateSystem applies a partial update. Absent fields are left unchanged;
// an absent status means "leave unchanged", not "reset to active".
func (s *CatalogService) UpdateSystem(ctx context.Context, id string, input ports.UpdateSystemInput) (*domain.System, error) {
	patch := domain.SystemPatch{
		Name:        input.Name,
		Description: input.Description,
	}
	if input.BusinessSteward != nil {
		st := toSteward(*input.BusinessSteward)
		patch.BusinessSteward = &st
	}
	if input.SecuritySteward != nil {
		st := toSteward(*input.SecuritySteward)
		patch.SecuritySteward = &st
	}
	if input.TechnicalSteward != nil {
		st := toSteward(*input.TechnicalSteward)
		patch.TechnicalSteward = &st
	}
	if input.Status != nil {
		status := domain.SystemStatus(*input.Status)
		patch.Status = &status
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, domain.ErrSystemNotFound) {
			s.logger.Error().Err(err).Str("system_id", id).Msg("failed to update system")
		}
		return nil, err
	}

	metrics.SystemsUpdatedTotal.Inc()
	s.logger.Info().Str("system_id", id).Msg("system updated")
	return &updated, nil
}

// DeleteSystem removes an entry for good.
func (s *CatalogService) DeleteSystem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrSystemNotFound) {
			s.logger.Error().Err(err).Str("system_id", id).Msg("failed to delete system")
		}
		return err
	}

	metrics.SystemsDeletedTotal.Inc()
	s.logger.Info().Str("system_id", id).Msg("system deleted")
	return nil
}

func toSteward(in ports.StewardInput) domain.Steward {
	return domain.Steward{Name: in.Name, Email: in.Email}
}

// matchesSearch reports whether the term appears in the entry's name,
// description, or any steward name, case-insensitively.
func matchesSearch(sys domain.System, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{
		sys.Name,
		sys.Description,
		sys.BusinessSteward.Name,
		sys.SecuritySteward.Name,
		sys.TechnicalSteward.Name,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
