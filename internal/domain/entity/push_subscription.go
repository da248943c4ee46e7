// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription represents one registered push endpoint of a user.
// A user may hold several (one per browser/device). The Push Directory is
// the only mutator: rows are created on subscribe and deleted on explicit
// unsubscribe or when the push service reports the endpoint gone.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the subscription.
	UserID    string    `json:"user_id"`    // External identity of the owning user.
	Endpoint  string    `json:"endpoint"`   // Unique delivery address (Web Push URL or FCM token).
	P256dh    string    `json:"p256dh"`     // Client public key for payload encryption (Web Push).
	Auth      string    `json:"auth"`       // Client auth secret (Web Push).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the subscription was registered.
}
