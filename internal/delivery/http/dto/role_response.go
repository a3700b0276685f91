package dto

import (
	"time"

	"github.com/google/uuid"
)

type RequirementResponse struct {
	SkillID  *uuid.UUID `json:"skill_id,omitempty"`
	Name     string     `json:"name"`
	Weight   int        `json:"weight"`
	MinScore int        `json:"min_score"`
}

type RoleResponse struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Company      string                `json:"company"`
	Location     string                `json:"location"`
	SalaryRange  string                `json:"salary_range,omitempty"`
	PostedAt     time.Time             `json:"posted_at"`
	Requirements []RequirementResponse `json:"requirements"`
}
