package dto

import "github.com/google/uuid"

type SkillGapResponse struct {
	SkillID       *uuid.UUID `json:"skill_id,omitempty"`
	SkillName     string     `json:"skill_name"`
	CurrentScore  int        `json:"current_score"`
	RequiredScore int        `json:"required_score"`
	Gap           int        `json:"gap"`
	Priority      string     `json:"priority"`
}
