// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertResponse is an append-only audit row recording a respond attempt.
// Every attempt is recorded; only the first one is bound to the alert itself.
type AlertResponse struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the response row.
	AlertID     uuid.UUID `json:"alert_id"`     // The alert this response targets.
	ResponderID string    `json:"responder_id"` // External identity of the responding user.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of the respond attempt.
}
