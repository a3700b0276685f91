package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	RoleID          uuid.UUID `json:"role_id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	MatchPercentage int       `json:"match_percentage"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
