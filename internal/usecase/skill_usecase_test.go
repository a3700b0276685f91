package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"talent-match/internal/domain/skill"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockCatalog struct {
	skills []skill.Skill
	err    error
}

func (m *mockCatalog) GetAllSkills(context.Context) ([]skill.Skill, error) {
	return m.skills, m.err
}

func (m *mockCatalog) GetSkillByName(_ context.Context, name string) (skill.Skill, error) {
	for _, s := range m.skills {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (m *mockCatalog) CreateSkill(_ context.Context, name, category string) (skill.Skill, error) {
	s := skill.Skill{ID: uuid.New(), Name: name, Category: category, CreatedAt: time.Now()}
	m.skills = append(m.skills, s)
	return s, nil
}

func TestSkillUsecase_Profile_ComputesReadiness(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 80, "React": 60})

	uc := NewSkillUsecase(&mockCatalog{}, store, nil, nil)

	profile, err := uc.Profile(context.Background(), candidateID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(profile.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(profile.Skills))
	}
	if profile.ReadinessIndex != 70 {
		t.Fatalf("expected readiness 70, got %d", profile.ReadinessIndex)
	}
}

func TestSkillUsecase_Profile_EmptyIsZero(t *testing.T) {
	uc := NewSkillUsecase(&mockCatalog{}, &mockSkillStore{}, nil, nil)

	profile, err := uc.Profile(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile.ReadinessIndex != 0 {
		t.Fatalf("expected readiness 0 for empty profile, got %d", profile.ReadinessIndex)
	}
}

func TestSkillUsecase_TrackSkill_CreatesCatalogEntryOnFirstUse(t *testing.T) {
	candidateID := uuid.New()
	catalog := &mockCatalog{}
	store := &mockSkillStore{}

	uc := NewSkillUsecase(catalog, store, nil, nil)

	created, err := uc.TrackSkill(context.Background(), candidateID, TrackSkillInput{
		SkillName:    "Go",
		Category:     "Backend",
		InitialScore: 40,
		TargetScore:  80,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != skill.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.MaxScore != 100 {
		t.Fatalf("expected max score 100, got %d", created.MaxScore)
	}
	if len(catalog.skills) != 1 || catalog.skills[0].Name != "Go" {
		t.Fatalf("expected catalog entry for Go, got %+v", catalog.skills)
	}
}

func TestSkillUsecase_TrackSkill_RejectsDuplicate(t *testing.T) {
	candidateID := uuid.New()
	catalog := &mockCatalog{}
	store := &mockSkillStore{}
	uc := NewSkillUsecase(catalog, store, nil, nil)

	if _, err := uc.TrackSkill(context.Background(), candidateID, TrackSkillInput{SkillName: "Go"}); err != nil {
		t.Fatalf("first track: %v", err)
	}
	if _, err := uc.TrackSkill(context.Background(), candidateID, TrackSkillInput{SkillName: "Go"}); !errors.Is(err, ErrSkillAlreadyTracked) {
		t.Fatalf("expected ErrSkillAlreadyTracked, got %v", err)
	}
}

func TestSkillUsecase_TrackSkill_RejectsOutOfRangeScores(t *testing.T) {
	uc := NewSkillUsecase(&mockCatalog{}, &mockSkillStore{}, nil, nil)

	if _, err := uc.TrackSkill(context.Background(), uuid.New(), TrackSkillInput{SkillName: "Go", InitialScore: 101}); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
	if _, err := uc.TrackSkill(context.Background(), uuid.New(), TrackSkillInput{SkillName: "Go", TargetScore: -1}); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
}

func TestSkillUsecase_OverrideScore(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 30})
	skillID := store.records[0].SkillID

	uc := NewSkillUsecase(&mockCatalog{}, store, nil, nil)

	updated, err := uc.OverrideScore(context.Background(), candidateID, skillID, 65)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Score != 65 {
		t.Fatalf("expected score 65, got %d", updated.Score)
	}
	if store.records[0].Score != 65 {
		t.Fatalf("expected persisted score 65, got %d", store.records[0].Score)
	}

	if _, err := uc.OverrideScore(context.Background(), candidateID, skillID, 120); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
	if _, err := uc.OverrideScore(context.Background(), candidateID, uuid.New(), 50); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillUsecase_SetTargetScore(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 30})
	skillID := store.records[0].SkillID

	uc := NewSkillUsecase(&mockCatalog{}, store, nil, nil)

	if err := uc.SetTargetScore(context.Background(), candidateID, skillID, 85); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if store.records[0].TargetScore != 85 {
		t.Fatalf("expected target 85, got %d", store.records[0].TargetScore)
	}
	if err := uc.SetTargetScore(context.Background(), candidateID, skillID, 101); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
	if err := uc.SetTargetScore(context.Background(), candidateID, uuid.New(), 50); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
