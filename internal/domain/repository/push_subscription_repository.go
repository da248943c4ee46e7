// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrSubscriptionNotFound is returned when a push subscription is not found.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// PushSubscriptionRepository defines the interface for push subscription
// database operations. It is the only mutator of subscription rows.
type PushSubscriptionRepository interface {
	// UpsertSubscription persists a subscription; duplicate (userID, endpoint)
	// pairs collapse to a single row with refreshed keys.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// DeleteSubscription removes the row matching (userID, endpoint).
	// No-op when absent.
	DeleteSubscription(ctx context.Context, userID, endpoint string) error

	// FindSubscriptionsByUser retrieves all subscriptions of one user.
	FindSubscriptionsByUser(ctx context.Context, userID string) ([]*entity.PushSubscription, error)

	// FindSubscriptionsExcludingUser retrieves every subscription in the
	// directory except those owned by excludedUserID.
	FindSubscriptionsExcludingUser(ctx context.Context, excludedUserID string) ([]*entity.PushSubscription, error)

	// FindSubscriptionsForUsers retrieves all subscriptions for a list of user
	// IDs. Used for batch fetching when targeting nearby users.
	FindSubscriptionsForUsers(ctx context.Context, userIDs []string) ([]*entity.PushSubscription, error)
}
