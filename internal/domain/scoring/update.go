package scoring

import (
	"fmt"
	"time"
)

// MaxEventBoost caps how many percentage points a single event completion
// can add to one skill.
const MaxEventBoost = 15

// Outcome is a resolved assessment or event result that can be applied to
// a skill. The two implementations below are the only ones.
type Outcome interface {
	apply(s Skill, now time.Time) (Skill, error)
}

// AssessmentOutcome is a fresh, authoritative measurement: applying it
// replaces the skill's score outright.
type AssessmentOutcome struct {
	Correct int
	Total   int
}

// EventOutcome is a bounded additive boost earned from an event-completion
// survey. It only touches skills named in RelevantSkillNames.
type EventOutcome struct {
	RawPoints          int
	MaxPossiblePoints  int
	RelevantSkillNames []string
}

// ApplyScoreUpdate returns the skill after the outcome has been applied.
// A caller-supplied score outside [0,100] is rejected rather than clamped,
// so upstream corruption cannot slip through; clamping applies only to the
// computed results.
func ApplyScoreUpdate(s Skill, out Outcome, now time.Time) (Skill, error) {
	if s.Score < 0 || s.Score > MaxScale {
		return Skill{}, fmt.Errorf("%w: skill %q has score=%d", ErrInvalidScore, s.Name, s.Score)
	}
	if out == nil {
		return Skill{}, fmt.Errorf("%w: nil outcome", ErrInvalidScore)
	}
	return out.apply(s, now)
}

func (o AssessmentOutcome) apply(s Skill, now time.Time) (Skill, error) {
	if o.Total <= 0 {
		return Skill{}, fmt.Errorf("%w: assessment outcome with total=%d", ErrInvalidScore, o.Total)
	}
	if o.Correct < 0 || o.Correct > o.Total {
		return Skill{}, fmt.Errorf("%w: assessment outcome correct=%d total=%d", ErrInvalidScore, o.Correct, o.Total)
	}

	s.Score = roundPct(float64(o.Correct) / float64(o.Total) * MaxScale)
	s.Status = StatusAssessed
	at := now.UTC()
	s.AssessedAt = &at
	return s, nil
}

func (o EventOutcome) apply(s Skill, now time.Time) (Skill, error) {
	if o.MaxPossiblePoints <= 0 {
		return Skill{}, fmt.Errorf("%w: event outcome with max_possible=%d", ErrInvalidScore, o.MaxPossiblePoints)
	}
	if o.RawPoints < 0 || o.RawPoints > o.MaxPossiblePoints {
		return Skill{}, fmt.Errorf("%w: event outcome raw=%d max_possible=%d", ErrInvalidScore, o.RawPoints, o.MaxPossiblePoints)
	}

	if !o.Relevant(s.Name) {
		return s, nil
	}

	delta := roundPct(float64(o.RawPoints) / float64(o.MaxPossiblePoints) * MaxEventBoost)
	s.Score = clampInt(s.Score+delta, 0, MaxScale)
	return s, nil
}

// Relevant reports whether the event declares the named skill as one of
// its relevant-skill tags.
func (o EventOutcome) Relevant(skillName string) bool {
	k := nameKey(skillName)
	for _, n := range o.RelevantSkillNames {
		if nameKey(n) == k {
			return true
		}
	}
	return false
}
