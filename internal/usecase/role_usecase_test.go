package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRoleUsecase_CreateRole_LinksCatalogSkills(t *testing.T) {
	catalog := &mockCatalog{}
	goSkill, _ := catalog.CreateSkill(context.Background(), "Go", "Backend")

	uc := NewRoleUsecase(&mockRoleRepo{}, catalog, nil)

	role, err := uc.CreateRole(context.Background(), CreateRoleInput{
		Title:   "Backend Engineer",
		Company: "Acme",
		Requirements: []RequirementInput{
			{SkillName: "Go", Weight: 60, MinScore: 50},
			{SkillName: "Kubernetes", Weight: 40, MinScore: 40},
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if role.Requirements[0].SkillID != goSkill.ID {
		t.Fatalf("expected Go linked to catalog id %s, got %s", goSkill.ID, role.Requirements[0].SkillID)
	}
	// Kubernetes is not in the catalog; the requirement stays name-only.
	if role.Requirements[1].SkillID != uuid.Nil {
		t.Fatalf("expected unlinked requirement, got %s", role.Requirements[1].SkillID)
	}
	if role.PostedAt.IsZero() {
		t.Fatalf("expected posted_at to be set")
	}
}

func TestRoleUsecase_CreateRole_RejectsBadWeights(t *testing.T) {
	uc := NewRoleUsecase(&mockRoleRepo{}, &mockCatalog{}, nil)

	_, err := uc.CreateRole(context.Background(), CreateRoleInput{
		Title: "Backend Engineer",
		Requirements: []RequirementInput{
			{SkillName: "Go", Weight: 60, MinScore: 50},
			{SkillName: "React", Weight: 60, MinScore: 50},
		},
	})
	if !errors.Is(err, ErrInvalidRoleWeights) {
		t.Fatalf("expected ErrInvalidRoleWeights, got %v", err)
	}
}

func TestRoleUsecase_CreateRole_RejectsEmptyTitle(t *testing.T) {
	uc := NewRoleUsecase(&mockRoleRepo{}, &mockCatalog{}, nil)

	_, err := uc.CreateRole(context.Background(), CreateRoleInput{
		Requirements: []RequirementInput{{SkillName: "Go", Weight: 100, MinScore: 50}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoleUsecase_DeleteRole(t *testing.T) {
	repo := &mockRoleRepo{}
	role, _ := repo.Create(context.Background(), roleWith("Backend Engineer", time.Now()))

	uc := NewRoleUsecase(repo, &mockCatalog{}, nil)

	if err := uc.DeleteRole(context.Background(), role.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.DeleteRole(context.Background(), role.ID); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
