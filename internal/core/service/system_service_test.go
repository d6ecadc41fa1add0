package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/entarch/systems-catalog/internal/core/domain"
	"github.com/entarch/systems-catalog/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubSystemRepo struct {
	systems []domain.System
	nextID  int
	listErr error // if set, List returns this error
}

func (r *stubSystemRepo) List(_ context.Context) ([]domain.System, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.System, len(r.systems))
	copy(out, r.systems)
	return out, nil
}

func (r *stubSystemRepo) Get(_ context.Context, id string) (domain.System, error) {
	for _, sys := range r.systems {
		if sys.ID == id {
			return sys, nil
		}
	}
	return domain.System{}, domain.ErrSystemNotFound
}

func (r *stubSystemRepo) Create(_ context.Context, sys domain.System) (domain.System, error) {
	r.nextID++
	now := time.Now().UTC()
	sys.ID = fmt.Sprintf("SYS-STUB-%05d", r.nextID)
	sys.CreatedAt = now
	sys.UpdatedAt = now
	r.systems = append(r.systems, sys)
	return sys, nil
}

func (r *stubSystemRepo) Update(_ context.Context, id string, patch domain.SystemPatch) (domain.System, error) {
	for i := range r.systems {
		if r.systems[i].ID == id {
			patch.Apply(&r.systems[i])
			r.systems[i].UpdatedAt = time.Now().UTC()
			return r.systems[i], nil
		}
	}
	return domain.System{}, domain.ErrSystemNotFound
}

func (r *stubSystemRepo) Delete(_ context.Context, id string) error {
	for i := range r.systems {
		if r.systems[i].ID == id {
			r.systems = append(r.systems[:i], r.systems[i+1:]...)
			return nil
		}
	}
	return domain.ErrSystemNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func minimalInput(name, status string) ports.CreateSystemInput {
	return ports.CreateSystemInput{
		Name:             name,
		Description:      "desc",
		BusinessSteward:  ports.StewardInput{Name: "A", Email: "a@x.com"},
		SecuritySteward:  ports.StewardInput{Name: "B", Email: "b@x.com"},
		TechnicalSteward: ports.StewardInput{Name: "C", Email: "c@x.com"},
		Status:           status,
	}
}

// ---------------------------------------------------------------------------
// CreateSystem tests
// ---------------------------------------------------------------------------

func TestCatalogService_Create_DefaultsStatusToActive(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Test System", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != domain.StatusActive {
		t.Errorf("expected status %q, got %q", domain.StatusActive, created.Status)
	}
	if created.ID == "" {
		t.Error("expected repository-assigned id")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Error("expected created_at == updated_at at creation")
	}
}

func TestCatalogService_Create_KeepsExplicitStatus(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Pending System", "pending"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("expected status pending, got %q", created.Status)
	}
}

func TestCatalogService_Create_MapsStewards(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Steward Check", "active"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.BusinessSteward.Email != "a@x.com" ||
		created.SecuritySteward.Email != "b@x.com" ||
		created.TechnicalSteward.Email != "c@x.com" {
		t.Errorf("steward mapping wrong: %+v", created)
	}
}

// ---------------------------------------------------------------------------
// ListSystems tests
// ---------------------------------------------------------------------------

func seedCatalog(t *testing.T, svc *CatalogService) {
	t.Helper()
	for _, tc := range []struct{ name, status string }{
		{"Payroll Platform", "active"},
		{"Legacy CRM", "inactive"},
		{"Data Warehouse", "pending"},
	} {
		if _, err := svc.CreateSystem(context.Background(), minimalInput(tc.name, tc.status)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

func TestCatalogService_List_NoFilterReturnsAll(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)
	seedCatalog(t, svc)

	systems, err := svc.ListSystems(context.Background(), ports.ListSystemsFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(systems) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(systems))
	}
	if systems[0].Name != "Payroll Platform" {
		t.Errorf("insertion order not preserved: %+v", systems)
	}
}

func TestCatalogService_List_FiltersByStatus(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)
	seedCatalog(t, svc)

	systems, err := svc.ListSystems(context.Background(), ports.ListSystemsFilter{Status: "inactive"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(systems) != 1 || systems[0].Name != "Legacy CRM" {
		t.Errorf("status filter wrong: %+v", systems)
	}
}

func TestCatalogService_List_SearchIsCaseInsensitive(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)
	seedCatalog(t, svc)

	systems, err := svc.ListSystems(context.Background(), ports.ListSystemsFilter{Search: "warehouse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(systems) != 1 || systems[0].Name != "Data Warehouse" {
		t.Errorf("search filter wrong: %+v", systems)
	}
}

func TestCatalogService_List_SearchMatchesStewardNames(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)
	seedCatalog(t, svc)

	// Every seeded entry has business steward "A".
	systems, err := svc.ListSystems(context.Background(), ports.ListSystemsFilter{Search: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(systems) != 3 {
		t.Errorf("expected steward-name match on all 3 entries, got %d", len(systems))
	}
}

func TestCatalogService_List_PropagatesStorageError(t *testing.T) {
	repo := &stubSystemRepo{listErr: domain.ErrCorruptDocument}
	svc := NewCatalogService(repo, discardLogger)

	if _, err := svc.ListSystems(context.Background(), ports.ListSystemsFilter{}); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

// ---------------------------------------------------------------------------
// UpdateSystem / DeleteSystem tests
// ---------------------------------------------------------------------------

func TestCatalogService_Update_PartialFieldsOnly(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Before", "active"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := "inactive"
	updated, err := svc.UpdateSystem(context.Background(), created.ID, ports.UpdateSystemInput{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != domain.StatusInactive {
		t.Errorf("expected status inactive, got %q", updated.Status)
	}
	if updated.Name != "Before" || updated.Description != "desc" {
		t.Errorf("unsupplied fields mutated: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Error("id must be immutable")
	}
}

func TestCatalogService_Update_ReplacesStewardWhole(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Steward Swap", "active"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateSystem(context.Background(), created.ID, ports.UpdateSystemInput{
		BusinessSteward: &ports.StewardInput{Name: "New Owner", Email: "new@x.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.BusinessSteward.Name != "New Owner" || updated.BusinessSteward.Email != "new@x.com" {
		t.Errorf("business steward not replaced: %+v", updated.BusinessSteward)
	}
	if updated.SecuritySteward.Name != "B" {
		t.Errorf("other stewards must be untouched: %+v", updated.SecuritySteward)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	name := "ghost"
	_, err := svc.UpdateSystem(context.Background(), "SYS-NOPE-AAAAA", ports.UpdateSystemInput{Name: &name})
	if err != domain.ErrSystemNotFound {
		t.Fatalf("expected ErrSystemNotFound, got %v", err)
	}
}

func TestCatalogService_Delete_ThenNotFound(t *testing.T) {
	repo := &stubSystemRepo{}
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.CreateSystem(context.Background(), minimalInput("Doomed", "active"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteSystem(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteSystem(context.Background(), created.ID); err != domain.ErrSystemNotFound {
		t.Fatalf("expected ErrSystemNotFound on second delete, got %v", err)
	}
}
