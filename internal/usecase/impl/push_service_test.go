package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPushService(t *testing.T) (
	usecase.PushUsecase,
	*mockRepo.MockPushSubscriptionRepository,
	*mockSvc.MockPushSender,
) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pushUsecase := NewPushService(logger, subscriptionRepo, sender)

	return pushUsecase, subscriptionRepo, sender
}

func testSubscription(userID, endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
}

func TestPushService_Subscribe_Success(t *testing.T) {
	pushUsecase, subscriptionRepo, _ := createTestPushService(t)

	ctx := context.Background()
	subscription := testSubscription("user-1", "https://push.example.com/sub/1")

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, subscription).Return(nil)

	err := pushUsecase.Subscribe(ctx, subscription)

	require.NoError(t, err)
}

func TestPushService_Unsubscribe_Success(t *testing.T) {
	pushUsecase, subscriptionRepo, _ := createTestPushService(t)

	ctx := context.Background()

	subscriptionRepo.EXPECT().DeleteSubscription(ctx, "user-1", "https://push.example.com/sub/1").Return(nil)

	err := pushUsecase.Unsubscribe(ctx, "user-1", "https://push.example.com/sub/1")

	require.NoError(t, err)
}

func TestPushService_SendToUser_AllSettled(t *testing.T) {
	pushUsecase, subscriptionRepo, sender := createTestPushService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "title", Body: "body"}
	first := testSubscription("user-1", "https://push.example.com/sub/1")
	second := testSubscription("user-1", "https://push.example.com/sub/2")

	subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, "user-1").
		Return([]*entity.PushSubscription{first, second}, nil)

	sender.EXPECT().Send(ctx, first, payload).Return(nil)
	sender.EXPECT().Send(ctx, second, payload).Return(errors.New("push service 500"))

	sent, failed, err := pushUsecase.SendToUser(ctx, "user-1", payload)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
}

func TestPushService_SendToUser_NoSubscriptions(t *testing.T) {
	pushUsecase, subscriptionRepo, _ := createTestPushService(t)

	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, "user-1").
		Return([]*entity.PushSubscription{}, nil)

	sent, failed, err := pushUsecase.SendToUser(ctx, "user-1", &service.PushPayload{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}

func TestPushService_SendToUsers_TargetsListedUsersOnly(t *testing.T) {
	pushUsecase, subscriptionRepo, sender := createTestPushService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "title"}
	subscription := testSubscription("user-2", "https://push.example.com/sub/9")

	subscriptionRepo.EXPECT().
		FindSubscriptionsForUsers(ctx, []string{"user-2", "user-3"}).
		Return([]*entity.PushSubscription{subscription}, nil)
	sender.EXPECT().Send(ctx, subscription, payload).Return(nil)

	sent, failed, err := pushUsecase.SendToUsers(ctx, []string{"user-2", "user-3"}, payload)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, failed)
}

func TestPushService_BroadcastExcluding_GoneEndpointPrunedOnly(t *testing.T) {
	pushUsecase, subscriptionRepo, sender := createTestPushService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "title"}
	healthy := testSubscription("user-2", "https://push.example.com/sub/healthy")
	gone := testSubscription("user-3", "https://push.example.com/sub/gone")

	subscriptionRepo.EXPECT().
		FindSubscriptionsExcludingUser(ctx, "creator-1").
		Return([]*entity.PushSubscription{healthy, gone}, nil)

	sender.EXPECT().Send(ctx, healthy, payload).Return(nil)
	sender.EXPECT().Send(ctx, gone, payload).Return(errors.Wrap(service.ErrEndpointGone, "push service says 410"))

	// Only the gone sibling is pruned; the healthy one stays registered.
	subscriptionRepo.EXPECT().DeleteSubscription(ctx, gone.UserID, gone.Endpoint).Return(nil)

	sent, failed, err := pushUsecase.BroadcastExcluding(ctx, "creator-1", payload)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
}

func TestPushService_BroadcastExcluding_PruneFailureIsSwallowed(t *testing.T) {
	pushUsecase, subscriptionRepo, sender := createTestPushService(t)

	ctx := context.Background()
	payload := &service.PushPayload{Title: "title"}
	gone := testSubscription("user-2", "https://push.example.com/sub/gone")

	subscriptionRepo.EXPECT().
		FindSubscriptionsExcludingUser(ctx, "creator-1").
		Return([]*entity.PushSubscription{gone}, nil)
	sender.EXPECT().Send(ctx, gone, payload).Return(service.ErrEndpointGone)
	subscriptionRepo.EXPECT().
		DeleteSubscription(ctx, gone.UserID, gone.Endpoint).
		Return(errors.New("database unavailable"))

	sent, failed, err := pushUsecase.BroadcastExcluding(ctx, "creator-1", payload)

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, failed)
}

func TestPushService_BroadcastExcluding_DirectoryFailure(t *testing.T) {
	pushUsecase, subscriptionRepo, _ := createTestPushService(t)

	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindSubscriptionsExcludingUser(ctx, "creator-1").
		Return(nil, errors.New("database unavailable"))

	sent, failed, err := pushUsecase.BroadcastExcluding(ctx, "creator-1", &service.PushPayload{Title: "t"})

	require.Error(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}
