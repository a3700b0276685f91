package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// ComputeSkillGaps derives the positive shortfalls between a candidate's
// current scores and a requirement profile. A requirement the candidate
// lacks entirely counts from a current score of 0. Results are sorted
// descending by gap; equal gaps keep requirement order.
func ComputeSkillGaps(skills []Skill, reqs []Requirement) []SkillGap {
	byName := skillsByName(skills)

	gaps := make([]SkillGap, 0, len(reqs))
	for _, r := range reqs {
		current := 0
		skillID := r.SkillID
		if s, ok := byName[nameKey(r.Name)]; ok {
			current = s.Score
			if s.ID != uuid.Nil {
				skillID = s.ID
			}
		}

		gap := r.MinScore - current
		if gap <= 0 {
			continue
		}

		gaps = append(gaps, SkillGap{
			SkillID:       skillID,
			SkillName:     r.Name,
			CurrentScore:  current,
			RequiredScore: r.MinScore,
			Gap:           gap,
			Priority:      priorityFor(gap),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
	return gaps
}

// TargetGaps derives gaps against each skill's own target score instead of
// a role profile.
func TargetGaps(skills []Skill) []SkillGap {
	gaps := make([]SkillGap, 0, len(skills))
	for _, s := range skills {
		gap := s.TargetScore - s.Score
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, SkillGap{
			SkillID:       s.ID,
			SkillName:     s.Name,
			CurrentScore:  s.Score,
			RequiredScore: s.TargetScore,
			Gap:           gap,
			Priority:      priorityFor(gap),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
	return gaps
}

func priorityFor(gap int) Priority {
	switch {
	case gap >= 10:
		return PriorityHigh
	case gap >= 5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
