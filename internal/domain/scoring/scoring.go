// Package scoring holds the pure skill-scoring and matching rules. All
// functions are deterministic computations over their inputs; persistence
// and transport live in the layers above.
package scoring

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSkill = errors.New("invalid skill")
	ErrInvalidScore = errors.New("score out of range")
)

const (
	StatusPending  = "pending"
	StatusAssessed = "assessed"
)

// MaxScale is the percentage scale every score lives on.
const MaxScale = 100

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Score       int
	MaxScore    int
	TargetScore int
	AssessedAt  *time.Time
	Status      string
}

type Requirement struct {
	SkillID  uuid.UUID
	Name     string
	Weight   int
	MinScore int
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type SkillGap struct {
	SkillID       uuid.UUID
	SkillName     string
	CurrentScore  int
	RequiredScore int
	Gap           int
	Priority      Priority
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func skillsByName(skills []Skill) map[string]Skill {
	byName := make(map[string]Skill, len(skills))
	for _, s := range skills {
		k := nameKey(s.Name)
		if k == "" {
			continue
		}
		byName[k] = s
	}
	return byName
}

// roundPct rounds half up for the non-negative ratios used here.
func roundPct(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
