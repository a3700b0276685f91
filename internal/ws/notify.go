package ws

import (
	"encoding/json"
	"time"

	"talent-match/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationCreatedEvent struct {
	Type            string    `json:"type"`
	ApplicationID   uuid.UUID `json:"application_id"`
	RoleID          uuid.UUID `json:"role_id"`
	RoleTitle       string    `json:"role_title"`
	MatchPercentage int       `json:"match_percentage"`
	Status          string    `json:"status"`
	Timestamp       string    `json:"timestamp"`
}

// ApplicationNotifier pushes application events to the affected
// candidate over the hub. Delivery is best effort.
type ApplicationNotifier struct {
	hub *Hub
}

func NewApplicationNotifier(hub *Hub) *ApplicationNotifier {
	return &ApplicationNotifier{hub: hub}
}

func (n *ApplicationNotifier) ApplicationCreated(app application.Application, roleTitle string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationCreatedEvent{
		Type:            "application_created",
		ApplicationID:   app.ID,
		RoleID:          app.RoleID,
		RoleTitle:       roleTitle,
		MatchPercentage: app.MatchPercentage,
		Status:          app.Status,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendTo(app.CandidateID, b)
}
