package service

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrEndpointGone is returned by a PushSender when the push service reports
// the endpoint as permanently invalid (HTTP 404/410 for Web Push, an
// unregistered token for FCM). The dispatcher deletes the subscription.
var ErrEndpointGone = errors.New("push endpoint gone")

// PushPayload is the notification body delivered to a push endpoint. Data
// carries the routing fields the receiving client/worker acts on; Data["type"]
// is one of the constants.NotificationType values.
type PushPayload struct {
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	Icon               string            `json:"icon,omitempty"`
	Badge              string            `json:"badge,omitempty"`
	RequireInteraction bool              `json:"requireInteraction,omitempty"`
	Data               map[string]string `json:"data,omitempty"`
}

// PushSender defines the interface for push delivery providers.
type PushSender interface {
	// Send delivers one payload to one subscription. Returns ErrEndpointGone
	// (possibly wrapped) when the endpoint should be pruned.
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) error
}
