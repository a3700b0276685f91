package importer

import (
	"sort"
	"strings"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/skill"
)

const defaultMinScore = 40

// ExtractRequirements scans a posting's text for catalog skills and
// turns mention counts into a weight profile summing to exactly 100.
// Postings that mention no known skill yield nothing and are skipped.
func ExtractRequirements(text string, catalog []skill.Skill) []job.Requirement {
	haystack := strings.ToLower(text)
	if strings.TrimSpace(haystack) == "" {
		return nil
	}

	type hit struct {
		skill skill.Skill
		count int
	}
	hits := make([]hit, 0)
	total := 0
	for _, s := range catalog {
		needle := strings.ToLower(strings.TrimSpace(s.Name))
		if needle == "" {
			continue
		}
		n := strings.Count(haystack, needle)
		if n == 0 {
			continue
		}
		hits = append(hits, hit{skill: s, count: n})
		total += n
	}
	if total == 0 {
		return nil
	}

	// Most-mentioned first so the rounding remainder lands on the
	// heaviest requirements deterministically.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].skill.Name < hits[j].skill.Name
	})

	reqs := make([]job.Requirement, 0, len(hits))
	assigned := 0
	for _, h := range hits {
		w := h.count * 100 / total
		reqs = append(reqs, job.Requirement{
			SkillID:  h.skill.ID,
			Name:     h.skill.Name,
			Weight:   w,
			MinScore: defaultMinScore,
		})
		assigned += w
	}
	for i := 0; assigned < 100; i = (i + 1) % len(reqs) {
		reqs[i].Weight++
		assigned++
	}

	// Integer division can leave zero-weight tail entries when many
	// skills share few mentions; fold those away.
	out := reqs[:0]
	leftover := 0
	for _, r := range reqs {
		if r.Weight == 0 {
			continue
		}
		out = append(out, r)
		leftover += r.Weight
	}
	if len(out) > 0 && leftover < 100 {
		out[0].Weight += 100 - leftover
	}
	return out
}
