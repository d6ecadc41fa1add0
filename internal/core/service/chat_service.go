package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/entarch/systems-catalog/internal/api/metrics"
	"github.com/entarch/systems-catalog/internal/core/domain"
	"github.com/entarch/systems-catalog/internal/core/ports"
)

// mockModelName is reported in every reply so clients can tell these answers
// apart from a real model integration.
const mockModelName = "catalog-mock"

// ChatService produces hard-coded, keyword-driven answers about the catalog.
// It reads live catalog contents for counts and lookups but performs no model
// calls of any kind.
type ChatService struct {
	repo   ports.SystemRepository
	logger zerolog.Logger
}

func NewChatService(repo ports.SystemRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{repo: repo, logger: logger}
}

// Respond picks a canned answer for the prompt. Rules are matched in order;
// the first hit wins, and an unmatched prompt falls through to the help text.
func (s *ChatService) Respond(ctx context.Context, prompt string) (*ports.ChatReply, error) {
	systems, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat responder could not read catalog")
		return nil, err
	}

	metrics.ChatRequestsTotal.Inc()

	lower := strings.ToLower(prompt)
	var response string
	switch {
	case containsAny(lower, "how many", "count", "total"):
		response = s.countAnswer(systems)
	case containsAny(lower, "steward", "responsible", "owner"):
		response = stewardAnswer
	case containsAny(lower, "status", "active", "inactive", "pending"):
		response = s.statusAnswer(systems)
	default:
		if sys, ok := findByName(systems, lower); ok {
			response = describeSystem(sys)
		} else {
			response = helpAnswer
		}
	}

	return &ports.ChatReply{Response: response, ModelUsed: mockModelName}, nil
}

func (s *ChatService) countAnswer(systems []domain.System) string {
	if len(systems) == 0 {
		return "The catalog is currently empty. Create your first system entry through the catalog form or POST /api/systems."
	}
	return fmt.Sprintf("There are currently %d systems registered in the enterprise catalog. Ask about any of them by name for details.", len(systems))
}

func (s *ChatService) statusAnswer(systems []domain.System) string {
	counts := map[domain.SystemStatus]int{}
	for _, sys := range systems {
		counts[sys.Status]++
	}
	return fmt.Sprintf(
		"Catalog status breakdown: %d active, %d inactive, %d pending. Active systems are in production use; pending systems are awaiting steward sign-off.",
		counts[domain.StatusActive], counts[domain.StatusInactive], counts[domain.StatusPending])
}

const stewardAnswer = "Every catalog entry names three stewards: a business steward accountable for the system's purpose and funding, " +
	"a security steward accountable for its risk posture, and a technical steward accountable for its operation. " +
	"Each steward is recorded with a full name and a contact email."

const helpAnswer = "I can answer questions about the enterprise systems catalog: try asking how many systems are registered, " +
	"what the steward roles mean, how systems break down by status, or mention a system by name for its details."

// findByName returns the first system whose name appears in the prompt.
func findByName(systems []domain.System, lowerPrompt string) (domain.System, bool) {
	for _, sys := range systems {
		if sys.Name != "" && strings.Contains(lowerPrompt, strings.ToLower(sys.Name)) {
			return sys, true
		}
	}
	return domain.System{}, false
}

func describeSystem(sys domain.System) string {
	return fmt.Sprintf(
		"%s (%s, status: %s): %s. Business steward: %s <%s>. Security steward: %s <%s>. Technical steward: %s <%s>.",
		sys.Name, sys.ID, sys.Status, sys.Description,
		sys.BusinessSteward.Name, sys.BusinessSteward.Email,
		sys.SecuritySteward.Name, sys.SecuritySteward.Email,
		sys.TechnicalSteward.Name, sys.TechnicalSteward.Email)
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
