package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/skill"

	"github.com/google/uuid"
)

func TestAssessmentUsecase_SubmitQuiz_ReplacesScore(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 30})
	store.records[0].Status = skill.StatusPending
	skillID := store.records[0].SkillID

	uc := NewAssessmentUsecase(store, nil, nil)

	result, err := uc.SubmitQuiz(context.Background(), candidateID, skillID, assessment.QuizSession{
		Answers:        []int{0, 1, 2, 0},
		CorrectOptions: []int{0, 1, 0, 0},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Correct != 3 || result.Total != 4 {
		t.Fatalf("expected 3/4 correct, got %d/%d", result.Correct, result.Total)
	}
	if result.NewScore != 75 {
		t.Fatalf("expected score replaced with 75, got %d", result.NewScore)
	}
	if result.Skill.Status != skill.StatusAssessed {
		t.Fatalf("expected assessed status, got %q", result.Skill.Status)
	}
	if result.Skill.AssessedAt == nil {
		t.Fatalf("expected assessed_at to be set")
	}
	if store.records[0].Score != 75 {
		t.Fatalf("expected persisted score 75, got %d", store.records[0].Score)
	}
}

func TestAssessmentUsecase_SubmitQuiz_EmptySession(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 30})

	uc := NewAssessmentUsecase(store, nil, nil)

	_, err := uc.SubmitQuiz(context.Background(), candidateID, store.records[0].SkillID, assessment.QuizSession{})
	if !errors.Is(err, ErrEmptyAssessment) {
		t.Fatalf("expected ErrEmptyAssessment, got %v", err)
	}
}

func TestAssessmentUsecase_SubmitQuiz_UnknownSkill(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 30})

	uc := NewAssessmentUsecase(store, nil, nil)

	_, err := uc.SubmitQuiz(context.Background(), candidateID, uuid.New(), assessment.QuizSession{
		Answers:        []int{0},
		CorrectOptions: []int{0},
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAssessmentUsecase_CompleteEvent_BoostsRelevantSkillsOnly(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 70, "React": 40})

	uc := NewAssessmentUsecase(store, nil, nil)

	// 3 answers at 3 points plus the full reflection bonus: 11/11 raw,
	// so the boost is the full 15.
	result, err := uc.CompleteEvent(context.Background(), candidateID, assessment.EventSurvey{
		AnswerPoints:   []int{3, 3, 3},
		Reflection:     "Built and deployed a small service end to end during the event.",
		RelevantSkills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(result.AffectedNames) != 1 || result.AffectedNames[0] != "Go" {
		t.Fatalf("expected only Go affected, got %v", result.AffectedNames)
	}

	var goScore, reactScore int
	for _, cs := range store.records {
		switch cs.Name {
		case "Go":
			goScore = cs.Score
		case "React":
			reactScore = cs.Score
		}
	}
	if goScore != 85 {
		t.Fatalf("expected Go boosted to 85, got %d", goScore)
	}
	if reactScore != 40 {
		t.Fatalf("expected React untouched at 40, got %d", reactScore)
	}
	if result.OldReadiness != 55 || result.NewReadiness != 63 {
		t.Fatalf("expected readiness 55 -> 63, got %d -> %d", result.OldReadiness, result.NewReadiness)
	}
}

func TestAssessmentUsecase_CompleteEvent_LeavesStatusAlone(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 70})
	store.records[0].Status = skill.StatusPending
	store.records[0].AssessedAt = nil

	uc := NewAssessmentUsecase(store, nil, nil)

	_, err := uc.CompleteEvent(context.Background(), candidateID, assessment.EventSurvey{
		AnswerPoints:   []int{2, 2, 2},
		RelevantSkills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if store.records[0].Status != skill.StatusPending {
		t.Fatalf("event boost must not mark a skill assessed, got %q", store.records[0].Status)
	}
	if store.records[0].AssessedAt != nil {
		t.Fatalf("event boost must not set assessed_at")
	}
}

func TestAssessmentUsecase_CompleteEvent_NoRelevantSkills(t *testing.T) {
	candidateID := uuid.New()
	store := candidateWith(candidateID, map[string]int{"Go": 70})

	uc := NewAssessmentUsecase(store, nil, nil)

	_, err := uc.CompleteEvent(context.Background(), candidateID, assessment.EventSurvey{
		AnswerPoints:   []int{3, 3, 3},
		RelevantSkills: []string{"Rust"},
	})
	if !errors.Is(err, ErrNoRelevantSkills) {
		t.Fatalf("expected ErrNoRelevantSkills, got %v", err)
	}
	if store.records[0].Score != 70 {
		t.Fatalf("expected score unchanged, got %d", store.records[0].Score)
	}
}
