// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	deliveryctx "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"
)

type pushService struct {
	logger           *slog.Logger
	subscriptionRepo repository.PushSubscriptionRepository
	sender           service.PushSender
}

// NewPushService creates a new push service instance
func NewPushService(
	logger *slog.Logger,
	subscriptionRepo repository.PushSubscriptionRepository,
	sender service.PushSender,
) usecase.PushUsecase {
	return &pushService{
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		sender:           sender,
	}
}

// Subscribe registers or refreshes a push subscription.
func (s *pushService) Subscribe(ctx context.Context, subscription *entity.PushSubscription) error {
	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return errors.Wrap(err, "failed to upsert subscription")
	}

	return nil
}

// Unsubscribe removes the subscription matching (userID, endpoint).
func (s *pushService) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	if err := s.subscriptionRepo.DeleteSubscription(ctx, userID, endpoint); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// SendToUser delivers the payload to every subscription of one user.
func (s *pushService) SendToUser(ctx context.Context, userID string, payload *service.PushPayload) (int, int, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to find subscriptions by user")
	}

	sent, failed := s.dispatch(ctx, subscriptions, payload)

	return sent, failed, nil
}

// SendToUsers delivers the payload to every subscription of the listed users.
func (s *pushService) SendToUsers(ctx context.Context, userIDs []string, payload *service.PushPayload) (int, int, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsForUsers(ctx, userIDs)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to find subscriptions for users")
	}

	sent, failed := s.dispatch(ctx, subscriptions, payload)

	return sent, failed, nil
}

// BroadcastExcluding delivers the payload to the whole directory except the
// excluded user's subscriptions.
func (s *pushService) BroadcastExcluding(ctx context.Context, excludedUserID string, payload *service.PushPayload) (int, int, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsExcludingUser(ctx, excludedUserID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to find broadcast subscriptions")
	}

	sent, failed := s.dispatch(ctx, subscriptions, payload)

	return sent, failed, nil
}

// dispatch fans the payload out to every subscription concurrently and waits
// for all attempts to settle. A subscription whose endpoint is reported gone
// is pruned from the directory; every other failure is logged and dropped so
// one bad endpoint cannot affect its siblings.
func (s *pushService) dispatch(ctx context.Context, subscriptions []*entity.PushSubscription, payload *service.PushPayload) (int, int) {
	if len(subscriptions) == 0 {
		return 0, 0
	}

	logger := deliveryctx.GetLoggerOrDefault(ctx, s.logger)

	var (
		wg     sync.WaitGroup
		sent   atomic.Int64
		failed atomic.Int64
	)

	for _, subscription := range subscriptions {
		wg.Add(1)
		go func(subscription *entity.PushSubscription) {
			defer wg.Done()

			err := s.sender.Send(ctx, subscription, payload)
			if err == nil {
				sent.Add(1)

				return
			}

			failed.Add(1)

			if errors.Is(err, service.ErrEndpointGone) {
				if delErr := s.subscriptionRepo.DeleteSubscription(ctx, subscription.UserID, subscription.Endpoint); delErr != nil {
					logger.LogAttrs(ctx, slog.LevelError, "Failed to prune gone push subscription",
						slog.String("user_id", subscription.UserID),
						slog.String("error", delErr.Error()),
					)

					return
				}

				logger.LogAttrs(ctx, slog.LevelInfo, "Pruned gone push subscription",
					slog.String("user_id", subscription.UserID),
					slog.String("endpoint", subscription.Endpoint),
				)

				return
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Push delivery failed",
				slog.String("user_id", subscription.UserID),
				slog.String("error", err.Error()),
			)
		}(subscription)
	}

	wg.Wait()

	return int(sent.Load()), int(failed.Load())
}
