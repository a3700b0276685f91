// Package assessment turns finished quiz sessions and event-reflection
// surveys into the outcomes consumed by the scoring engine.
package assessment

import (
	"errors"
	"fmt"

	"talent-match/internal/domain/scoring"
)

var (
	ErrEmptySession  = errors.New("assessment session has no questions")
	ErrAnswerCount   = errors.New("answer count does not match question count")
	ErrInvalidPoints = errors.New("survey answer points outside rubric")
)

const (
	minOptionPoints = 1
	maxOptionPoints = 3

	maxReflectionBonus = 2

	// Reflection length thresholds for the 1 and 2 point bonuses.
	reflectionBonusLen  = 20
	reflectionBonus2Len = 50
)

// QuizSession is an ordered set of answered multiple-choice questions.
// Answers holds the option index the candidate picked per question,
// CorrectOptions the right one.
type QuizSession struct {
	Answers        []int
	CorrectOptions []int
}

// ResolveQuiz counts exact answer matches and produces the replacement
// outcome. There is no partial credit for near misses.
func ResolveQuiz(s QuizSession) (scoring.AssessmentOutcome, error) {
	total := len(s.CorrectOptions)
	if total == 0 {
		return scoring.AssessmentOutcome{}, ErrEmptySession
	}
	if len(s.Answers) != total {
		return scoring.AssessmentOutcome{}, fmt.Errorf("%w: %d answers for %d questions", ErrAnswerCount, len(s.Answers), total)
	}

	correct := 0
	for i, want := range s.CorrectOptions {
		if s.Answers[i] == want {
			correct++
		}
	}

	return scoring.AssessmentOutcome{Correct: correct, Total: total}, nil
}

// EventSurvey is a self-reported participation survey completed after an
// event, plus a free-text reflection.
type EventSurvey struct {
	AnswerPoints   []int
	Reflection     string
	RelevantSkills []string
}

// ResolveEventSurvey sums the rubric points of every answered question,
// adds the reflection-length bonus and produces the bounded additive
// outcome. Each answer must carry a point value on the 1-3 rubric.
func ResolveEventSurvey(s EventSurvey) (scoring.EventOutcome, error) {
	if len(s.AnswerPoints) == 0 {
		return scoring.EventOutcome{}, ErrEmptySession
	}

	raw := 0
	for _, p := range s.AnswerPoints {
		if p < minOptionPoints || p > maxOptionPoints {
			return scoring.EventOutcome{}, fmt.Errorf("%w: %d", ErrInvalidPoints, p)
		}
		raw += p
	}
	raw += reflectionBonus(s.Reflection)

	return scoring.EventOutcome{
		RawPoints:          raw,
		MaxPossiblePoints:  len(s.AnswerPoints)*maxOptionPoints + maxReflectionBonus,
		RelevantSkillNames: s.RelevantSkills,
	}, nil
}

func reflectionBonus(reflection string) int {
	switch {
	case len(reflection) > reflectionBonus2Len:
		return maxReflectionBonus
	case len(reflection) > reflectionBonusLen:
		return 1
	default:
		return 0
	}
}
