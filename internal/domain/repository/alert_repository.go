// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrActiveAlertExists is returned when the creator already has an active alert.
	ErrActiveAlertExists = errors.New("creator already has an active alert")
	// ErrAlertClosed is returned when mutating an alert that is no longer active.
	ErrAlertClosed = errors.New("alert is closed")
)

// AlertRepository defines the interface for alert-related database operations.
//
// The two lifecycle invariants are enforced here, not by callers: CreateAlert
// performs its one-active-alert-per-creator check and the insert as a single
// statement, and BindResponder is a conditional update that succeeds for
// exactly one responder. A check-then-act split across calls is a bug.
type AlertRepository interface {
	// CreateAlert persists a new alert. Returns ErrActiveAlertExists when the
	// creator already has an active alert.
	CreateAlert(ctx context.Context, alert *entity.PanicAlert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.PanicAlert, error)

	// FindActiveAlertByCreator retrieves the creator's active alert, if any.
	FindActiveAlertByCreator(ctx context.Context, creatorID string) (*entity.PanicAlert, error)

	// FindActiveAlerts retrieves all active alerts, newest first.
	FindActiveAlerts(ctx context.Context) ([]*entity.PanicAlert, error)

	// FindActiveRespondedAlert retrieves the active alert the user participates
	// in (as creator or responder) that already has a responder bound.
	FindActiveRespondedAlert(ctx context.Context, userID string) (*entity.PanicAlert, error)

	// BindResponder binds responderID (and optional initial coordinates) to the
	// alert iff it is active and unbound. First writer wins: the bool reports
	// whether this call performed the binding. A lost race is not an error, so
	// the audit row written alongside it still commits. Returns ErrAlertClosed
	// when the alert is inactive.
	BindResponder(ctx context.Context, alertID uuid.UUID, responderID string, lat, lon *float64) (bool, error)

	// CreateResponse appends the audit row recording a respond attempt. Every
	// attempt against an existing alert is recorded, winning or not.
	CreateResponse(ctx context.Context, response *entity.AlertResponse) error

	// UpdateResponderLocation updates the responder coordinates iff responderID
	// is the bound responder of an active alert; otherwise it is a no-op.
	UpdateResponderLocation(ctx context.Context, alertID uuid.UUID, responderID string, lat, lon float64) error

	// Deactivate sets active=false. Idempotent: deactivating a closed alert is
	// harmless. Returns ErrAlertNotFound only for unknown ids.
	Deactivate(ctx context.Context, alertID uuid.UUID) error
}
