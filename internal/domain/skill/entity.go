package skill

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAssessed = "assessed"
)

var ErrInvalid = errors.New("invalid skill record")

// Skill is a catalog entry shared across candidates.
type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

// CandidateSkill is one candidate's record against a catalog skill. It is
// created pending with a zero (or resume-estimated) score and only mutated
// through assessment or event outcomes, or an explicit validated override.
type CandidateSkill struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	SkillID     uuid.UUID
	Name        string
	Category    string
	Score       int
	MaxScore    int
	TargetScore int
	AssessedAt  *time.Time
	Status      string
}

func (s CandidateSkill) Validate() error {
	if s.MaxScore <= 0 {
		return fmt.Errorf("%w: max_score=%d", ErrInvalid, s.MaxScore)
	}
	if s.Score < 0 || s.Score > s.MaxScore {
		return fmt.Errorf("%w: score=%d with max_score=%d", ErrInvalid, s.Score, s.MaxScore)
	}
	if s.TargetScore < 0 || s.TargetScore > s.MaxScore {
		return fmt.Errorf("%w: target_score=%d with max_score=%d", ErrInvalid, s.TargetScore, s.MaxScore)
	}
	switch s.Status {
	case StatusPending, StatusAssessed:
	default:
		return fmt.Errorf("%w: status=%q", ErrInvalid, s.Status)
	}
	return nil
}
