package application

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses. Pending marks a recruiter-initiated notification
// awaiting the candidate; applied marks a candidate-initiated application.
// Accepted and declined are terminal.
const (
	StatusPending  = "pending"
	StatusApplied  = "applied"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

type Application struct {
	ID          uuid.UUID
	RoleID      uuid.UUID
	CandidateID uuid.UUID

	// MatchPercentage is a snapshot computed when the application was
	// created, not recomputed as skills change.
	MatchPercentage int

	Status    string
	CreatedAt time.Time
}

func IsTerminal(status string) bool {
	return status == StatusAccepted || status == StatusDeclined
}

// CanTransition reports whether an application may move between the two
// statuses. Only open applications can be accepted or declined.
func CanTransition(from, to string) bool {
	if IsTerminal(from) {
		return false
	}
	return to == StatusAccepted || to == StatusDeclined
}
