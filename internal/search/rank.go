package search

import (
	"sort"
	"strings"
	"time"

	"talent-match/internal/domain/job"
)

// RoleScore breaks down why a role ranked where it did. Relevance
// dominates; freshness and completeness only separate roles the query
// matches equally well.
type RoleScore struct {
	Relevance    float64
	Freshness    float64
	Completeness float64
	Final        float64
}

// Relevance scores a role against the query variants: title hits weigh
// most, skill requirements next, company and location least. Capped at
// 10 so one spammy posting cannot bury the rest.
func Relevance(role job.Role, variants []string) float64 {
	if len(variants) == 0 {
		return 0
	}

	title := strings.ToLower(role.Title)
	company := strings.ToLower(role.Company)
	location := strings.ToLower(role.Location)

	score := 0.0
	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if title != "" && strings.Contains(title, v) {
			score += 3
		}
		for _, req := range role.Requirements {
			if strings.Contains(strings.ToLower(req.Name), v) {
				score += 2
				break
			}
		}
		if company != "" && strings.Contains(company, v) {
			score += 1
		}
		if location != "" && strings.Contains(location, v) {
			score += 1
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}

// Freshness steps down with posting age, zeroing out after a month.
func Freshness(role job.Role, now time.Time) float64 {
	if role.PostedAt.IsZero() {
		return 0
	}
	age := now.Sub(role.PostedAt)
	if age < 0 {
		age = 0
	}
	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	default:
		return 0
	}
}

// Completeness rewards postings with the fields candidates actually
// read before applying.
func Completeness(role job.Role) float64 {
	score := 0.0
	if strings.TrimSpace(role.Company) != "" {
		score += 1
	}
	if strings.TrimSpace(role.Location) != "" {
		score += 1
	}
	if strings.TrimSpace(role.SalaryRange) != "" {
		score += 1
	}
	if len(role.Requirements) >= 3 {
		score += 1
	}
	return score
}

func Score(role job.Role, variants []string, now time.Time) RoleScore {
	s := RoleScore{
		Relevance:    Relevance(role, variants),
		Freshness:    Freshness(role, now),
		Completeness: Completeness(role),
	}
	s.Final = s.Relevance*2 + s.Freshness*1.5 + s.Completeness*0.5
	return s
}

// RankRoles filters to roles the query matches and orders them by
// score, best first. An empty query returns the input unchanged.
func RankRoles(roles []job.Role, q Query, now time.Time) []job.Role {
	if q.Normalized == "" || len(roles) == 0 {
		return roles
	}

	type scored struct {
		role  job.Role
		score float64
	}
	kept := make([]scored, 0, len(roles))
	for _, role := range roles {
		s := Score(role, q.Variants, now)
		if s.Relevance == 0 {
			continue
		}
		kept = append(kept, scored{role: role, score: s.Final})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]job.Role, 0, len(kept))
	for _, it := range kept {
		out = append(out, it.role)
	}
	return out
}
