package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/skill"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockRoleRepo struct {
	roles []job.Role
	err   error
}

func (m *mockRoleRepo) Create(_ context.Context, role job.Role) (job.Role, error) {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	m.roles = append(m.roles, role)
	return role, nil
}

func (m *mockRoleRepo) FindByID(_ context.Context, id uuid.UUID) (job.Role, error) {
	if m.err != nil {
		return job.Role{}, m.err
	}
	for _, role := range m.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return job.Role{}, repository.ErrRoleNotFound
}

func (m *mockRoleRepo) ListRoles(context.Context) ([]job.Role, error) {
	return m.roles, m.err
}

func (m *mockRoleRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, role := range m.roles {
		if role.ID == id {
			m.roles = append(m.roles[:i], m.roles[i+1:]...)
			return nil
		}
	}
	return repository.ErrRoleNotFound
}

type mockSkillStore struct {
	records []skill.CandidateSkill
	err     error
}

func (m *mockSkillStore) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]skill.CandidateSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.CandidateSkill, 0)
	for _, cs := range m.records {
		if cs.CandidateID == candidateID {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (m *mockSkillStore) FindByCandidateAndSkill(_ context.Context, candidateID, skillID uuid.UUID) (skill.CandidateSkill, error) {
	for _, cs := range m.records {
		if cs.CandidateID == candidateID && cs.SkillID == skillID {
			return cs, nil
		}
	}
	return skill.CandidateSkill{}, repository.ErrCandidateSkillNotFound
}

func (m *mockSkillStore) Create(_ context.Context, cs skill.CandidateSkill) (skill.CandidateSkill, error) {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	m.records = append(m.records, cs)
	return cs, nil
}

func (m *mockSkillStore) UpdateTargetScore(_ context.Context, candidateID, skillID uuid.UUID, target int) error {
	for i := range m.records {
		if m.records[i].CandidateID == candidateID && m.records[i].SkillID == skillID {
			m.records[i].TargetScore = target
			return nil
		}
	}
	return repository.ErrCandidateSkillNotFound
}

func (m *mockSkillStore) UpdateScores(ctx context.Context, candidateID uuid.UUID, update func([]skill.CandidateSkill) ([]skill.CandidateSkill, error)) ([]skill.CandidateSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	current, _ := m.FindByCandidateID(ctx, candidateID)
	updated, err := update(current)
	if err != nil {
		return nil, err
	}
	for _, cs := range updated {
		for i := range m.records {
			if m.records[i].ID == cs.ID {
				m.records[i] = cs
			}
		}
	}
	return updated, nil
}

type mockAppRepo struct {
	apps []application.Application
	err  error
}

func (m *mockAppRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	// Mirrors the partial unique index on open notifications.
	if app.Status == application.StatusPending {
		if existing, err := m.FindPending(ctx, app.CandidateID, app.RoleID); err == nil {
			return existing, nil
		}
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.apps = append(m.apps, app)
	return app, nil
}

func (m *mockAppRepo) FindByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	for _, app := range m.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

func (m *mockAppRepo) FindPending(_ context.Context, candidateID, roleID uuid.UUID) (application.Application, error) {
	for _, app := range m.apps {
		if app.CandidateID == candidateID && app.RoleID == roleID && app.Status == application.StatusPending {
			return app, nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

func (m *mockAppRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, app := range m.apps {
		if app.CandidateID == candidateID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockAppRepo) ListByRole(_ context.Context, roleID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, app := range m.apps {
		if app.RoleID == roleID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *mockAppRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error) {
	for i := range m.apps {
		if m.apps[i].ID == id {
			m.apps[i].Status = status
			return m.apps[i], nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

type mockNotifier struct {
	created []application.Application
}

func (m *mockNotifier) ApplicationCreated(app application.Application, _ string) {
	m.created = append(m.created, app)
}

func candidateWith(candidateID uuid.UUID, scores map[string]int) *mockSkillStore {
	store := &mockSkillStore{}
	for name, score := range scores {
		store.records = append(store.records, skill.CandidateSkill{
			ID:          uuid.New(),
			CandidateID: candidateID,
			SkillID:     uuid.New(),
			Name:        name,
			Score:       score,
			MaxScore:    100,
			Status:      skill.StatusAssessed,
		})
	}
	return store
}

func roleWith(title string, postedAt time.Time, reqs ...job.Requirement) job.Role {
	return job.Role{
		ID:           uuid.New(),
		Title:        title,
		Company:      "Acme",
		Location:     "Remote",
		PostedAt:     postedAt,
		Requirements: reqs,
	}
}

func TestMatchingUsecase_RankRoles_OrdersByMatchThenPostedAt(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 90, "React": 40})

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	strong := roleWith("Backend Engineer", base.AddDate(0, 0, 5),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})
	weak := roleWith("Frontend Engineer", base,
		job.Requirement{Name: "React", Weight: 100, MinScore: 50})
	older := roleWith("Platform Engineer", base.AddDate(0, 0, -10),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{weak, strong, older}}, skills, &mockAppRepo{}, nil, nil, 60, nil)

	results, err := uc.RankRoles(context.Background(), candidateID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Equal 90% matches: the older posting wins the tie.
	if results[0].RoleID != older.ID || results[1].RoleID != strong.ID {
		t.Fatalf("expected tie broken by earliest posting, got %q then %q", results[0].Title, results[1].Title)
	}
	if results[2].RoleID != weak.ID {
		t.Fatalf("expected weakest match last, got %q", results[2].Title)
	}
	if !results[0].Eligible || results[2].Eligible {
		t.Fatalf("eligibility flags wrong: %+v", results)
	}
}

func TestMatchingUsecase_NotifyEligible_CreatesPendingWithSnapshot(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 80})
	role := roleWith("Backend Engineer", time.Now(),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})
	notifier := &mockNotifier{}

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{role}}, skills, &mockAppRepo{}, nil, notifier, 60, nil)

	app, created, err := uc.NotifyEligible(context.Background(), candidateID, role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected a new application")
	}
	if app.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
	if app.MatchPercentage != 80 {
		t.Fatalf("expected snapshot match 80, got %d", app.MatchPercentage)
	}
	if len(notifier.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.created))
	}
}

func TestMatchingUsecase_NotifyEligible_Idempotent(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 80})
	role := roleWith("Backend Engineer", time.Now(),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})
	notifier := &mockNotifier{}

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{role}}, skills, &mockAppRepo{}, nil, notifier, 60, nil)

	first, created, err := uc.NotifyEligible(context.Background(), candidateID, role.ID)
	if err != nil || !created {
		t.Fatalf("first call: created=%v err=%v", created, err)
	}
	second, created, err := uc.NotifyEligible(context.Background(), candidateID, role.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if created {
		t.Fatalf("second call must not create a new application")
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing application back, got %s vs %s", second.ID, first.ID)
	}
	if len(notifier.created) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifier.created))
	}
}

func TestMatchingUsecase_NotifyEligible_BelowThreshold(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 55})
	role := roleWith("Backend Engineer", time.Now(),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{role}}, skills, &mockAppRepo{}, nil, nil, 60, nil)

	_, _, err := uc.NotifyEligible(context.Background(), candidateID, role.ID)
	if !errors.Is(err, ErrBelowMatchThreshold) {
		t.Fatalf("expected ErrBelowMatchThreshold, got %v", err)
	}
}

func TestMatchingUsecase_NotifyEligible_EmptyProfile(t *testing.T) {
	candidateID := uuid.New()
	role := roleWith("Backend Engineer", time.Now(),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{role}}, &mockSkillStore{}, &mockAppRepo{}, nil, nil, 60, nil)

	_, _, err := uc.NotifyEligible(context.Background(), candidateID, role.ID)
	if !errors.Is(err, ErrSkillProfileEmpty) {
		t.Fatalf("expected ErrSkillProfileEmpty, got %v", err)
	}
}

func TestMatchingUsecase_Apply_BypassesThreshold(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 30})
	role := roleWith("Backend Engineer", time.Now(),
		job.Requirement{Name: "Go", Weight: 100, MinScore: 50})

	uc := NewMatchingUsecase(&mockRoleRepo{roles: []job.Role{role}}, skills, &mockAppRepo{}, nil, nil, 60, nil)

	app, err := uc.Apply(context.Background(), candidateID, role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != application.StatusApplied {
		t.Fatalf("expected applied status, got %q", app.Status)
	}
	// Below min_score: the skill contributes nothing, snapshot is 0.
	if app.MatchPercentage != 0 {
		t.Fatalf("expected snapshot match 0, got %d", app.MatchPercentage)
	}
}

func TestMatchingUsecase_Respond_TerminalTransitions(t *testing.T) {
	apps := &mockAppRepo{}
	pending, _ := apps.Create(context.Background(), application.Application{
		RoleID:      uuid.New(),
		CandidateID: uuid.New(),
		Status:      application.StatusPending,
		CreatedAt:   time.Now(),
	})

	uc := NewMatchingUsecase(&mockRoleRepo{}, &mockSkillStore{}, apps, nil, nil, 60, nil)

	accepted, err := uc.Respond(context.Background(), pending.ID, application.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if accepted.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %q", accepted.Status)
	}

	if _, err := uc.Respond(context.Background(), pending.ID, application.StatusDeclined); !errors.Is(err, ErrApplicationClosed) {
		t.Fatalf("expected ErrApplicationClosed, got %v", err)
	}
	if _, err := uc.Respond(context.Background(), pending.ID, "reopened"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Respond(context.Background(), uuid.New(), application.StatusAccepted); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestMatchingUsecase_RoleNotFound(t *testing.T) {
	candidateID := uuid.New()
	skills := candidateWith(candidateID, map[string]int{"Go": 80})
	uc := NewMatchingUsecase(&mockRoleRepo{}, skills, &mockAppRepo{}, nil, nil, 60, nil)

	if _, _, err := uc.NotifyEligible(context.Background(), candidateID, uuid.New()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
	if _, err := uc.Apply(context.Background(), candidateID, uuid.New()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
