package usecase

import (
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/domain/skill"
)

func toEngineSkill(cs skill.CandidateSkill) scoring.Skill {
	return scoring.Skill{
		ID:          cs.SkillID,
		Name:        cs.Name,
		Category:    cs.Category,
		Score:       cs.Score,
		MaxScore:    cs.MaxScore,
		TargetScore: cs.TargetScore,
		AssessedAt:  cs.AssessedAt,
		Status:      cs.Status,
	}
}

func toEngineSkills(records []skill.CandidateSkill) []scoring.Skill {
	out := make([]scoring.Skill, 0, len(records))
	for _, cs := range records {
		out = append(out, toEngineSkill(cs))
	}
	return out
}

func toEngineRequirements(reqs []job.Requirement) []scoring.Requirement {
	out := make([]scoring.Requirement, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, scoring.Requirement{
			SkillID:  req.SkillID,
			Name:     req.Name,
			Weight:   req.Weight,
			MinScore: req.MinScore,
		})
	}
	return out
}
