package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole    = errors.New("invalid job role")
	ErrInvalidWeights = errors.New("requirement weights must sum to 100")
)

type Requirement struct {
	SkillID  uuid.UUID
	Name     string
	Weight   int
	MinScore int
}

type Role struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	SalaryRange  string
	PostedAt     time.Time
	Requirements []Requirement
}

// Validate enforces the creation-time invariants: a titled role whose
// requirement weights sum to exactly 100, each weight and floor within
// [0,100]. Roles already stored are not revalidated retroactively.
func (r Role) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidRole)
	}
	if len(r.Requirements) == 0 {
		return fmt.Errorf("%w: no skill requirements", ErrInvalidRole)
	}

	sum := 0
	for _, req := range r.Requirements {
		if strings.TrimSpace(req.Name) == "" {
			return fmt.Errorf("%w: requirement with empty skill name", ErrInvalidRole)
		}
		if req.Weight < 0 || req.Weight > 100 {
			return fmt.Errorf("%w: requirement %q has weight=%d", ErrInvalidRole, req.Name, req.Weight)
		}
		if req.MinScore < 0 || req.MinScore > 100 {
			return fmt.Errorf("%w: requirement %q has min_score=%d", ErrInvalidRole, req.Name, req.MinScore)
		}
		sum += req.Weight
	}
	if sum != 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeights, sum)
	}
	return nil
}
