package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type CandidateSkillResponse struct {
	ID          uuid.UUID  `json:"id"`
	SkillID     uuid.UUID  `json:"skill_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Score       int        `json:"score"`
	MaxScore    int        `json:"max_score"`
	TargetScore int        `json:"target_score"`
	AssessedAt  *time.Time `json:"assessed_at"`
	Status      string     `json:"status"`
}

type SkillProfileResponse struct {
	Skills         []CandidateSkillResponse `json:"skills"`
	ReadinessIndex int                      `json:"readiness_index"`
}
