package scoring

import "fmt"

// ReadinessIndex aggregates a candidate's skills into a single percentage.
// Each skill contributes its score/maxScore ratio with equal weight
// regardless of category. An empty skill list yields 0.
func ReadinessIndex(skills []Skill) (int, error) {
	if len(skills) == 0 {
		return 0, nil
	}

	var sum float64
	for _, s := range skills {
		if s.MaxScore <= 0 {
			return 0, fmt.Errorf("%w: skill %q has max_score=%d", ErrInvalidSkill, s.Name, s.MaxScore)
		}
		sum += float64(s.Score) / float64(s.MaxScore)
	}

	idx := roundPct(sum / float64(len(skills)) * MaxScale)
	return clampInt(idx, 0, MaxScale), nil
}
