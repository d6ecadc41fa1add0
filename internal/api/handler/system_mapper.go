package handler

import (
	"github.com/entarch/systems-catalog/internal/core/domain"
	"github.com/entarch/systems-catalog/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSystemRequest) ports.CreateSystemInput {
	return ports.CreateSystemInput{
		Name:             req.Name,
		Description:      req.Description,
		BusinessSteward:  toStewardInput(req.BusinessSteward),
		SecuritySteward:  toStewardInput(req.SecuritySteward),
		TechnicalSteward: toStewardInput(req.TechnicalSteward),
		Status:           req.Status,
	}
}

func toUpdateInput(req updateSystemRequest) ports.UpdateSystemInput {
	in := ports.UpdateSystemInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.BusinessSteward != nil {
		st := toStewardInput(*req.BusinessSteward)
		in.BusinessSteward = &st
	}
	if req.SecuritySteward != nil {
		st := toStewardInput(*req.SecuritySteward)
		in.SecuritySteward = &st
	}
	if req.TechnicalSteward != nil {
		st := toStewardInput(*req.TechnicalSteward)
		in.TechnicalSteward = &st
	}
	return in
}

func toStewardInput(r stewardRequest) ports.StewardInput {
	return ports.StewardInput{Name: r.Name, Email: r.Email}
}

// --- Domain → HTTP response ---

func toSystemResponse(sys *domain.System) systemResponse {
	return systemResponse{
		SystemID:         sys.ID,
		Name:             sys.Name,
		Description:      sys.Description,
		BusinessSteward:  toStewardResponse(sys.BusinessSteward),
		SecuritySteward:  toStewardResponse(sys.SecuritySteward),
		TechnicalSteward: toStewardResponse(sys.TechnicalSteward),
		Status:           string(sys.Status),
		CreatedAt:        sys.CreatedAt.UTC(),
		UpdatedAt:        sys.UpdatedAt.UTC(),
	}
}

func toStewardResponse(st domain.Steward) stewardResponse {
	return stewardResponse{Name: st.Name, Email: st.Email}
}

func toListResponse(systems []domain.System) []systemResponse {
	out := make([]systemResponse, len(systems))
	for i := range systems {
		out[i] = toSystemResponse(&systems[i])
	}
	return out
}
