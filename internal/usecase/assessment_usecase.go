package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/domain/skill"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// QuizResult reports a graded quiz and the skill record it updated.
type QuizResult struct {
	Skill    skill.CandidateSkill
	Correct  int
	Total    int
	NewScore int
}

// EventResult reports an event survey's effect on the profile: the
// skills it touched and the readiness index before and after.
type EventResult struct {
	Skills        []skill.CandidateSkill
	AffectedNames []string
	OldReadiness  int
	NewReadiness  int
}

type AssessmentUsecase interface {
	SurveyQuestions(eventType string) []assessment.Question
	SubmitQuiz(ctx context.Context, candidateID, skillID uuid.UUID, session assessment.QuizSession) (QuizResult, error)
	CompleteEvent(ctx context.Context, candidateID uuid.UUID, survey assessment.EventSurvey) (EventResult, error)
}

type Assessments struct {
	skills repository.CandidateSkillRepository
	ranks  *RankCache
	log    *log.Logger
	now    func() time.Time
}

func NewAssessmentUsecase(skills repository.CandidateSkillRepository, ranks *RankCache, logger *log.Logger) *Assessments {
	if logger == nil {
		logger = log.Default()
	}
	return &Assessments{skills: skills, ranks: ranks, log: logger, now: time.Now}
}

func (u *Assessments) SurveyQuestions(eventType string) []assessment.Question {
	return assessment.SurveyQuestions(eventType)
}

// SubmitQuiz grades the session and replaces the skill's score with the
// quiz percentage, marking the record assessed.
func (u *Assessments) SubmitQuiz(ctx context.Context, candidateID, skillID uuid.UUID, session assessment.QuizSession) (QuizResult, error) {
	outcome, err := assessment.ResolveQuiz(session)
	if errors.Is(err, assessment.ErrEmptySession) {
		return QuizResult{}, ErrEmptyAssessment
	}
	if err != nil {
		return QuizResult{}, ErrInvalidInput
	}

	var updated skill.CandidateSkill
	now := u.now()
	_, err = u.skills.UpdateScores(ctx, candidateID, func(records []skill.CandidateSkill) ([]skill.CandidateSkill, error) {
		for i := range records {
			if records[i].SkillID != skillID {
				continue
			}
			next, err := scoring.ApplyScoreUpdate(toEngineSkill(records[i]), outcome, now)
			if err != nil {
				return nil, err
			}
			records[i].Score = next.Score
			records[i].Status = next.Status
			records[i].AssessedAt = next.AssessedAt
			updated = records[i]
			return records, nil
		}
		return nil, ErrSkillNotFound
	})
	if errors.Is(err, ErrSkillNotFound) {
		return QuizResult{}, ErrSkillNotFound
	}
	if err != nil {
		u.log.Printf("assessment_usecase op=submit_quiz candidate=%s skill=%s status=error err=%v", candidateID, skillID, err)
		return QuizResult{}, ErrInternal
	}

	u.ranks.Invalidate(ctx, candidateID)
	return QuizResult{
		Skill:    updated,
		Correct:  outcome.Correct,
		Total:    outcome.Total,
		NewScore: updated.Score,
	}, nil
}

// CompleteEvent applies the survey's bounded boost to every tracked
// skill the event is relevant to. Scores move; assessment status does
// not, since participation is self-reported.
func (u *Assessments) CompleteEvent(ctx context.Context, candidateID uuid.UUID, survey assessment.EventSurvey) (EventResult, error) {
	outcome, err := assessment.ResolveEventSurvey(survey)
	if errors.Is(err, assessment.ErrEmptySession) {
		return EventResult{}, ErrEmptyAssessment
	}
	if err != nil {
		return EventResult{}, ErrInvalidInput
	}

	var result EventResult
	now := u.now()
	_, err = u.skills.UpdateScores(ctx, candidateID, func(records []skill.CandidateSkill) ([]skill.CandidateSkill, error) {
		before, err := scoring.ReadinessIndex(toEngineSkills(records))
		if err != nil {
			return nil, err
		}

		affected := make([]string, 0, len(records))
		for i := range records {
			if !outcome.Relevant(records[i].Name) {
				continue
			}
			next, err := scoring.ApplyScoreUpdate(toEngineSkill(records[i]), outcome, now)
			if err != nil {
				return nil, err
			}
			records[i].Score = next.Score
			affected = append(affected, records[i].Name)
		}
		if len(affected) == 0 {
			return nil, ErrNoRelevantSkills
		}

		after, err := scoring.ReadinessIndex(toEngineSkills(records))
		if err != nil {
			return nil, err
		}

		result = EventResult{
			Skills:        records,
			AffectedNames: affected,
			OldReadiness:  before,
			NewReadiness:  after,
		}
		return records, nil
	})
	if errors.Is(err, ErrNoRelevantSkills) {
		return EventResult{}, ErrNoRelevantSkills
	}
	if err != nil {
		u.log.Printf("assessment_usecase op=complete_event candidate=%s status=error err=%v", candidateID, err)
		return EventResult{}, ErrInternal
	}

	u.ranks.Invalidate(ctx, candidateID)
	return result, nil
}
