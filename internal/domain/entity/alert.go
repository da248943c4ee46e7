// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertState describes where an alert sits in its lifecycle.
type AlertState string

const (
	// AlertStateUnanswered means the alert is active and no responder is bound yet.
	AlertStateUnanswered AlertState = "active_unanswered"
	// AlertStateResponded means the alert is active and a responder is bound.
	AlertStateResponded AlertState = "active_responded"
	// AlertStateClosed is terminal: the alert was cancelled or resolved.
	AlertStateClosed AlertState = "closed"
)

// PanicAlert represents a single distress event raised by a creator.
// The server-side store is the single source of truth for Active and ResponderID.
type PanicAlert struct {
	ID                 uuid.UUID  `json:"id"`                            // The Global Unique Identifier (GUID) for the alert.
	CreatorID          string     `json:"creator_id"`                    // External identity of the user who triggered the alert.
	Latitude           float64    `json:"latitude"`                      // Creator latitude captured at trigger time.
	Longitude          float64    `json:"longitude"`                     // Creator longitude captured at trigger time.
	Active             bool       `json:"active"`                        // True from creation until cancelled or resolved.
	ResponderID        *string    `json:"responder_id"`                  // Bound at most once, at the first accepted response.
	ResponderLatitude  *float64   `json:"responder_latitude,omitempty"`  // Updated over the tracking session.
	ResponderLongitude *float64   `json:"responder_longitude,omitempty"` // Updated over the tracking session.
	CreatedAt          time.Time  `json:"created_at"`                    // Timestamp of when the alert was triggered.
	UpdatedAt          time.Time  `json:"updated_at"`                    // Timestamp of the last modification.
}

// State derives the lifecycle state from the stored fields.
func (a *PanicAlert) State() AlertState {
	if !a.Active {
		return AlertStateClosed
	}
	if a.ResponderID != nil {
		return AlertStateResponded
	}

	return AlertStateUnanswered
}

// RelevantAlert is a PanicAlert projected for a would-be responder,
// carrying the distance from the responder's position.
type RelevantAlert struct {
	PanicAlert
	DistanceKm float64 `json:"distance_km"`
}
