package scoring

// MatchPercentage measures how well a candidate's skills satisfy a role's
// weighted requirements. Every requirement's weight counts toward the
// denominator; a requirement only feeds the numerator when the candidate
// holds the skill (name compared case-insensitively) at or above its
// minimum score, and then proportionally to the score rather than as a
// binary hit. Missing skills therefore always depress the result.
func MatchPercentage(candidateSkills []Skill, reqs []Requirement) int {
	if len(reqs) == 0 {
		return 0
	}

	byName := skillsByName(candidateSkills)

	var totalWeight float64
	var matchedWeight float64
	for _, r := range reqs {
		totalWeight += float64(r.Weight)

		s, ok := byName[nameKey(r.Name)]
		if !ok {
			continue
		}
		if s.Score >= r.MinScore {
			matchedWeight += float64(r.Weight) * float64(s.Score) / MaxScale
		}
	}

	if totalWeight <= 0 {
		return 0
	}
	return clampInt(roundPct(matchedWeight/totalWeight*MaxScale), 0, MaxScale)
}
