package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase defines the interface for the panic alert lifecycle use cases.
// An alert moves ACTIVE_UNANSWERED -> ACTIVE_RESPONDED -> CLOSED; both
// transitions are enforced server-side, never by the caller.
type AlertUsecase interface {
	// TriggerAlert creates an alert at the creator's position and broadcasts a
	// panic-alert push to every subscribed user except the creator. Broadcast
	// failures never roll the alert back.
	TriggerAlert(ctx context.Context, creatorID string, latitude, longitude float64) (*entity.PanicAlert, error)

	// RespondToAlert binds responderID as the single responder of the alert.
	// The first caller wins; losers receive ErrAlertAlreadyResponded and a
	// closed alert yields ErrAlertClosed. Every attempt against a live alert
	// is recorded in the response audit, winning or not. The winning bind
	// pushes a panic-response notification to the creator.
	RespondToAlert(ctx context.Context, alertID uuid.UUID, responderID string, latitude, longitude *float64) (*entity.PanicAlert, error)

	// CancelAlert deactivates the alert. Creator-only: other callers receive
	// ErrAlertUnauthorized. Idempotent, and notifies the bound responder with
	// an alert-cancelled push when one exists.
	CancelAlert(ctx context.Context, alertID uuid.UUID, userID string) error

	// GetAlertStatus retrieves the alert for status polling.
	GetAlertStatus(ctx context.Context, alertID uuid.UUID) (*entity.PanicAlert, error)

	// GetActiveAlert retrieves the caller's own active alert. Returns a nil
	// alert, not an error, when the caller has none.
	GetActiveAlert(ctx context.Context, creatorID string) (*entity.PanicAlert, error)

	// GetActiveResponse retrieves the active, already-bound alert the user
	// participates in, or nil when there is none. Responder coordinates are
	// seeded from the location store when the alert row has none yet.
	GetActiveResponse(ctx context.Context, userID string) (*entity.PanicAlert, error)

	// RelevantAlerts lists active alerts of other creators within the
	// relevance radius of the given position, with computed distances.
	RelevantAlerts(ctx context.Context, userID string, latitude, longitude float64) ([]*entity.RelevantAlert, error)

	// UpdateResponderLocation refreshes the bound responder's coordinates on
	// the alert row. A no-op for anyone but the bound responder.
	UpdateResponderLocation(ctx context.Context, alertID uuid.UUID, responderID string, latitude, longitude float64) error
}
