package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/domain/skill"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

func toUserResponse(u user.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

func toCandidateSkillResponse(cs skill.CandidateSkill) dto.CandidateSkillResponse {
	return dto.CandidateSkillResponse{
		ID:          cs.ID,
		SkillID:     cs.SkillID,
		Name:        cs.Name,
		Category:    cs.Category,
		Score:       cs.Score,
		MaxScore:    cs.MaxScore,
		TargetScore: cs.TargetScore,
		AssessedAt:  cs.AssessedAt,
		Status:      cs.Status,
	}
}

func toCandidateSkillResponses(records []skill.CandidateSkill) []dto.CandidateSkillResponse {
	out := make([]dto.CandidateSkillResponse, 0, len(records))
	for _, cs := range records {
		out = append(out, toCandidateSkillResponse(cs))
	}
	return out
}

func toRoleResponse(role job.Role) dto.RoleResponse {
	reqs := make([]dto.RequirementResponse, 0, len(role.Requirements))
	for _, req := range role.Requirements {
		r := dto.RequirementResponse{Name: req.Name, Weight: req.Weight, MinScore: req.MinScore}
		if req.SkillID != uuid.Nil {
			id := req.SkillID
			r.SkillID = &id
		}
		reqs = append(reqs, r)
	}
	return dto.RoleResponse{
		ID:           role.ID,
		Title:        role.Title,
		Company:      role.Company,
		Location:     role.Location,
		SalaryRange:  role.SalaryRange,
		PostedAt:     role.PostedAt,
		Requirements: reqs,
	}
}

func toApplicationResponse(app application.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:              app.ID,
		RoleID:          app.RoleID,
		CandidateID:     app.CandidateID,
		MatchPercentage: app.MatchPercentage,
		Status:          app.Status,
		CreatedAt:       app.CreatedAt,
	}
}

func toApplicationResponses(apps []application.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	return out
}

func toGapResponses(gaps []scoring.SkillGap) []dto.SkillGapResponse {
	out := make([]dto.SkillGapResponse, 0, len(gaps))
	for _, g := range gaps {
		r := dto.SkillGapResponse{
			SkillName:     g.SkillName,
			CurrentScore:  g.CurrentScore,
			RequiredScore: g.RequiredScore,
			Gap:           g.Gap,
			Priority:      string(g.Priority),
		}
		if g.SkillID != uuid.Nil {
			id := g.SkillID
			r.SkillID = &id
		}
		out = append(out, r)
	}
	return out
}
