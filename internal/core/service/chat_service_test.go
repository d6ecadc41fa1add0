package service

import (
	"context"
	"strings"
	"testing"

	"github.com/entarch/systems-catalog/internal/core/domain"
)

func seededChatService(t *testing.T) *ChatService {
	t.Helper()
	repo := &stubSystemRepo{}
	catalog := NewCatalogService(repo, discardLogger)
	seedCatalog(t, catalog)
	return NewChatService(repo, discardLogger)
}

func TestChatService_CountPrompt(t *testing.T) {
	svc := seededChatService(t)

	reply, err := svc.Respond(context.Background(), "How many systems are in the catalog?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Response, "3 systems") {
		t.Errorf("expected count in response, got %q", reply.Response)
	}
	if reply.ModelUsed != "catalog-mock" {
		t.Errorf("expected catalog-mock model marker, got %q", reply.ModelUsed)
	}
}

func TestChatService_CountPrompt_EmptyCatalog(t *testing.T) {
	svc := NewChatService(&stubSystemRepo{}, discardLogger)

	reply, err := svc.Respond(context.Background(), "what is the total number of systems?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Response, "empty") {
		t.Errorf("expected empty-catalog response, got %q", reply.Response)
	}
}

func TestChatService_StewardPrompt(t *testing.T) {
	svc := seededChatService(t)

	reply, err := svc.Respond(context.Background(), "Who is responsible? Explain the steward roles.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, role := range []string{"business steward", "security steward", "technical steward"} {
		if !strings.Contains(reply.Response, role) {
			t.Errorf("expected %q in steward explanation, got %q", role, reply.Response)
		}
	}
}

func TestChatService_StatusPrompt(t *testing.T) {
	svc := seededChatService(t)

	reply, err := svc.Respond(context.Background(), "give me the status breakdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Response, "1 active, 1 inactive, 1 pending") {
		t.Errorf("expected status breakdown, got %q", reply.Response)
	}
}

func TestChatService_SystemByName(t *testing.T) {
	svc := seededChatService(t)

	reply, err := svc.Respond(context.Background(), "Tell me about the Legacy CRM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Response, "Legacy CRM") || !strings.Contains(reply.Response, "a@x.com") {
		t.Errorf("expected system description, got %q", reply.Response)
	}
}

func TestChatService_FallbackHelp(t *testing.T) {
	svc := seededChatService(t)

	reply, err := svc.Respond(context.Background(), "what's the weather like?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Response != helpAnswer {
		t.Errorf("expected help fallback, got %q", reply.Response)
	}
}

func TestChatService_PropagatesStorageError(t *testing.T) {
	svc := NewChatService(&stubSystemRepo{listErr: domain.ErrCorruptDocument}, discardLogger)

	if _, err := svc.Respond(context.Background(), "how many systems?"); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}
