package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingHooks carries the callbacks a tracking session fires while its
// loops run. Nil hooks are skipped. Hooks are called from the session's own
// goroutines; implementations must be safe for that.
type TrackingHooks struct {
	// OnResponderLocation fires when fresh responder coordinates are observed
	// (creator side) or successfully reported (responder side).
	OnResponderLocation func(latitude, longitude float64)

	// OnAlertClosed fires once when the session detects the alert went
	// inactive. The session tears itself down afterwards.
	OnAlertClosed func()

	// OnError fires for per-attempt failures such as a geolocation timeout.
	// The session keeps running.
	OnError func(err error)
}

// Session is a running tracking session.
type Session interface {
	// Role reports which side of the alert this session tracks.
	Role() entity.TrackingRole

	// Stop tears the session down locally. For a responder this is the
	// "arrived" action: loops stop but the alert stays active for the creator.
	Stop()

	// Done is closed when all session loops have exited.
	Done() <-chan struct{}
}

// TrackingUsecase defines the interface for dual-sided live tracking of an
// active alert. The responder side periodically acquires a geolocation fix
// and reports it; the creator side periodically re-reads the alert to observe
// responder movement. Both sides poll alert status to detect closure.
type TrackingUsecase interface {
	// StartSession computes the caller's role on the alert and starts the
	// loops for that role. Unrelated users get a session with no loops.
	StartSession(ctx context.Context, alertID uuid.UUID, userID string, hooks TrackingHooks) (Session, error)
}
