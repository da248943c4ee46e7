package usecase

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
)

// PushUsecase defines the interface for the push subscription directory and
// the fan-out dispatcher.
//
// Delivery is all-settled: every subscription gets its own send attempt, a
// failing endpoint never blocks or fails its siblings, and per-endpoint errors
// are not propagated to the caller. Endpoints reported gone by the provider
// are pruned from the directory.
type PushUsecase interface {
	// Subscribe registers or refreshes a push subscription.
	Subscribe(ctx context.Context, subscription *entity.PushSubscription) error

	// Unsubscribe removes the subscription matching (userID, endpoint).
	// Removing an unknown subscription is not an error.
	Unsubscribe(ctx context.Context, userID, endpoint string) error

	// SendToUser delivers the payload to every subscription of one user.
	// Returns delivery counts; only directory lookup failures produce an error.
	SendToUser(ctx context.Context, userID string, payload *service.PushPayload) (sent, failed int, err error)

	// SendToUsers delivers the payload to every subscription of the listed
	// users. Used by the worker for nearby-user targeting.
	SendToUsers(ctx context.Context, userIDs []string, payload *service.PushPayload) (sent, failed int, err error)

	// BroadcastExcluding delivers the payload to every subscription in the
	// directory except those owned by excludedUserID.
	BroadcastExcluding(ctx context.Context, excludedUserID string, payload *service.PushPayload) (sent, failed int, err error)
}
