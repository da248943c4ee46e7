package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	mockUC "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertService(t *testing.T) (
	usecase.AlertUsecase,
	*mockRepo.MockAlertRepository,
	*mockRepo.MockLocationRepository,
	*mockRepo.MockTransactionManager,
	*mockUC.MockPushUsecase,
	*mockSvc.MockEventPublisher,
) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	pushUsecase := mockUC.NewMockPushUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Alert: &config.AlertConfig{
			RelevanceRadiusKm: 40.0,
			NearbyRadiusKm:    20.0,
		},
	}

	alertUsecase := NewAlertService(
		logger,
		cfg,
		alertRepo,
		locationRepo,
		txManager,
		pushUsecase,
		publisher,
	)

	return alertUsecase, alertRepo, locationRepo, txManager, pushUsecase, publisher
}

func TestAlertService_TriggerAlert_Success(t *testing.T) {
	alertUsecase, alertRepo, _, _, pushUsecase, publisher := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).
		Run(func(_ context.Context, alert *entity.PanicAlert) {
			alert.ID = alertID
		}).
		Return(nil)

	pushUsecase.EXPECT().
		BroadcastExcluding(ctx, "creator-1", mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Data["type"] == constants.NotificationTypePanicAlert &&
				payload.Data["alertId"] == alertID.String() &&
				payload.Data["triggerUserId"] == "creator-1" &&
				payload.RequireInteraction
		})).
		Return(3, 1, nil)

	publisher.EXPECT().
		PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.AlertID == alertID.String() && event.CreatorID == "creator-1"
		})).
		Return(nil)

	alert, err := alertUsecase.TriggerAlert(ctx, "creator-1", 25.033, 121.5654)

	require.NoError(t, err)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, "creator-1", alert.CreatorID)
	assert.True(t, alert.Active)
	assert.Nil(t, alert.ResponderID)
}

func TestAlertService_TriggerAlert_AlreadyActive(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()

	alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(repository.ErrActiveAlertExists)

	alert, err := alertUsecase.TriggerAlert(ctx, "creator-1", 25.033, 121.5654)

	require.ErrorIs(t, err, domainerrors.ErrAlertAlreadyActive)
	assert.Nil(t, alert)
}

func TestAlertService_TriggerAlert_DeliveryFailureDoesNotFailTrigger(t *testing.T) {
	alertUsecase, alertRepo, _, _, pushUsecase, publisher := createTestAlertService(t)

	ctx := context.Background()

	alertRepo.EXPECT().CreateAlert(ctx, mock.Anything).Return(nil)
	pushUsecase.EXPECT().
		BroadcastExcluding(ctx, "creator-1", mock.Anything).
		Return(0, 0, errors.New("directory unavailable"))
	publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	alert, err := alertUsecase.TriggerAlert(ctx, "creator-1", 25.033, 121.5654)

	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestAlertService_RespondToAlert_FirstResponderWins(t *testing.T) {
	alertUsecase, alertRepo, _, txManager, pushUsecase, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"
	responderLat := 25.04
	responderLon := 121.56

	txAlertRepo := mockRepo.NewMockAlertRepository(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().NewAlertRepository().Return(txAlertRepo)

	txAlertRepo.EXPECT().
		CreateResponse(ctx, mock.MatchedBy(func(response *entity.AlertResponse) bool {
			return response.AlertID == alertID && response.ResponderID == responderID
		})).
		Return(nil)
	txAlertRepo.EXPECT().
		BindResponder(ctx, alertID, responderID, &responderLat, &responderLon).
		Return(true, nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	boundAlert := &entity.PanicAlert{
		ID:                 alertID,
		CreatorID:          "creator-1",
		Latitude:           25.033,
		Longitude:          121.5654,
		Active:             true,
		ResponderID:        &responderID,
		ResponderLatitude:  &responderLat,
		ResponderLongitude: &responderLon,
	}
	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(boundAlert, nil)

	pushUsecase.EXPECT().
		SendToUser(ctx, "creator-1", mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Data["type"] == constants.NotificationTypePanicResponse &&
				payload.Data["alertId"] == alertID.String() &&
				payload.Data["responderUserId"] == responderID &&
				payload.Data["alertLatitude"] != "" &&
				payload.Data["alertLongitude"] != "" &&
				payload.Data["responderLatitude"] != "" &&
				payload.Data["responderLongitude"] != ""
		})).
		Return(1, 0, nil)

	alert, err := alertUsecase.RespondToAlert(ctx, alertID, responderID, &responderLat, &responderLon)

	require.NoError(t, err)
	require.NotNil(t, alert.ResponderID)
	assert.Equal(t, responderID, *alert.ResponderID)
	assert.Equal(t, entity.AlertStateResponded, alert.State())
}

func TestAlertService_RespondToAlert_LoserStillRecordedInAudit(t *testing.T) {
	alertUsecase, _, _, txManager, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	txAlertRepo := mockRepo.NewMockAlertRepository(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().NewAlertRepository().Return(txAlertRepo)

	// The audit row is appended before the bind attempt, and losing the bind
	// race is not a transaction error, so the row commits.
	txAlertRepo.EXPECT().
		CreateResponse(ctx, mock.MatchedBy(func(response *entity.AlertResponse) bool {
			return response.AlertID == alertID && response.ResponderID == "responder-2"
		})).
		Return(nil)
	txAlertRepo.EXPECT().
		BindResponder(ctx, alertID, "responder-2", (*float64)(nil), (*float64)(nil)).
		Return(false, nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			txErr := fn(repoFactory)
			assert.NoError(t, txErr)

			return txErr
		})

	alert, err := alertUsecase.RespondToAlert(ctx, alertID, "responder-2", nil, nil)

	require.ErrorIs(t, err, domainerrors.ErrAlertAlreadyResponded)
	assert.Nil(t, alert)
}

func TestAlertService_RespondToAlert_ClosedAlert(t *testing.T) {
	alertUsecase, _, _, txManager, _, _ := createTestAlertService(t)

	ctx := context.Background()

	txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrAlertClosed)

	alert, err := alertUsecase.RespondToAlert(ctx, uuid.New(), "responder-1", nil, nil)

	require.ErrorIs(t, err, domainerrors.ErrAlertClosed)
	assert.Nil(t, alert)
}

func TestAlertService_RespondToAlert_UnknownAlert(t *testing.T) {
	alertUsecase, _, _, txManager, _, _ := createTestAlertService(t)

	ctx := context.Background()

	txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrAlertNotFound)

	alert, err := alertUsecase.RespondToAlert(ctx, uuid.New(), "responder-1", nil, nil)

	require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	assert.Nil(t, alert)
}

func TestAlertService_CancelAlert_NotifiesBoundResponder(t *testing.T) {
	alertUsecase, alertRepo, _, _, pushUsecase, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.PanicAlert{
		ID:          alertID,
		CreatorID:   "creator-1",
		Active:      true,
		ResponderID: &responderID,
	}, nil)
	alertRepo.EXPECT().Deactivate(ctx, alertID).Return(nil)

	pushUsecase.EXPECT().
		SendToUser(ctx, responderID, mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Data["type"] == constants.NotificationTypeAlertCancelled &&
				payload.Data["alertId"] == alertID.String()
		})).
		Return(1, 0, nil)

	err := alertUsecase.CancelAlert(ctx, alertID, "creator-1")

	require.NoError(t, err)
}

func TestAlertService_CancelAlert_NonCreatorGetsNotFoundShape(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.PanicAlert{
		ID:        alertID,
		CreatorID: "creator-1",
		Active:    true,
	}, nil)

	err := alertUsecase.CancelAlert(ctx, alertID, "someone-else")

	require.ErrorIs(t, err, domainerrors.ErrAlertUnauthorized)
	assert.Equal(t, 404, domainerrors.ErrAlertUnauthorized.HTTPCode())
}

func TestAlertService_CancelAlert_RepeatCancelSkipsNotification(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	// Already inactive: Deactivate stays a harmless no-op and the responder
	// must not be pinged a second time.
	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.PanicAlert{
		ID:          alertID,
		CreatorID:   "creator-1",
		Active:      false,
		ResponderID: &responderID,
	}, nil)
	alertRepo.EXPECT().Deactivate(ctx, alertID).Return(nil)

	err := alertUsecase.CancelAlert(ctx, alertID, "creator-1")

	require.NoError(t, err)
}

func TestAlertService_GetActiveResponse_SeedsResponderLocation(t *testing.T) {
	alertUsecase, alertRepo, locationRepo, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	alertRepo.EXPECT().FindActiveRespondedAlert(ctx, "creator-1").Return(&entity.PanicAlert{
		ID:          alertID,
		CreatorID:   "creator-1",
		Active:      true,
		ResponderID: &responderID,
	}, nil)
	locationRepo.EXPECT().FindLocationByUser(ctx, responderID).Return(&entity.UserLocation{
		UserID:    responderID,
		Latitude:  25.05,
		Longitude: 121.55,
	}, nil)

	alert, err := alertUsecase.GetActiveResponse(ctx, "creator-1")

	require.NoError(t, err)
	require.NotNil(t, alert.ResponderLatitude)
	require.NotNil(t, alert.ResponderLongitude)
	assert.InDelta(t, 25.05, *alert.ResponderLatitude, 1e-9)
	assert.InDelta(t, 121.55, *alert.ResponderLongitude, 1e-9)
}

func TestAlertService_GetActiveResponse_NoStoredLocation(t *testing.T) {
	alertUsecase, alertRepo, locationRepo, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	responderID := "responder-1"

	alertRepo.EXPECT().FindActiveRespondedAlert(ctx, responderID).Return(&entity.PanicAlert{
		ID:          uuid.New(),
		CreatorID:   "creator-1",
		Active:      true,
		ResponderID: &responderID,
	}, nil)
	locationRepo.EXPECT().FindLocationByUser(ctx, responderID).Return(nil, repository.ErrLocationNotFound)

	alert, err := alertUsecase.GetActiveResponse(ctx, responderID)

	require.NoError(t, err)
	assert.Nil(t, alert.ResponderLatitude)
	assert.Nil(t, alert.ResponderLongitude)
}

func TestAlertService_GetActiveResponse_NoneYieldsNilAlert(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()

	alertRepo.EXPECT().FindActiveRespondedAlert(ctx, "user-1").Return(nil, repository.ErrAlertNotFound)

	// Polling clients read "no bound alert yet" as a normal empty answer.
	alert, err := alertUsecase.GetActiveResponse(ctx, "user-1")

	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestAlertService_GetActiveAlert_ReturnsOwnAlert(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindActiveAlertByCreator(ctx, "creator-1").Return(&entity.PanicAlert{
		ID:        alertID,
		CreatorID: "creator-1",
		Active:    true,
	}, nil)

	alert, err := alertUsecase.GetActiveAlert(ctx, "creator-1")

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, alertID, alert.ID)
}

func TestAlertService_GetActiveAlert_NoneYieldsNilAlert(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()

	alertRepo.EXPECT().FindActiveAlertByCreator(ctx, "creator-1").Return(nil, repository.ErrAlertNotFound)

	alert, err := alertUsecase.GetActiveAlert(ctx, "creator-1")

	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestAlertService_RelevantAlerts_FiltersOwnAndFarAlerts(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()

	// Caller stands at Taipei Main Station. One alert is their own, one is a
	// few km away, one is in Kaohsiung far outside the relevance radius.
	own := &entity.PanicAlert{ID: uuid.New(), CreatorID: "me", Latitude: 25.0478, Longitude: 121.5170, Active: true}
	near := &entity.PanicAlert{ID: uuid.New(), CreatorID: "neighbor", Latitude: 25.0330, Longitude: 121.5654, Active: true}
	far := &entity.PanicAlert{ID: uuid.New(), CreatorID: "southerner", Latitude: 22.6273, Longitude: 120.3014, Active: true}

	alertRepo.EXPECT().FindActiveAlerts(ctx).Return([]*entity.PanicAlert{own, near, far}, nil)

	relevant, err := alertUsecase.RelevantAlerts(ctx, "me", 25.0478, 121.5170)

	require.NoError(t, err)
	require.Len(t, relevant, 1)
	assert.Equal(t, near.ID, relevant[0].ID)
	assert.Greater(t, relevant[0].DistanceKm, 0.0)
	assert.Less(t, relevant[0].DistanceKm, 40.0)
}

func TestAlertService_GetAlertStatus_NotFound(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	alert, err := alertUsecase.GetAlertStatus(ctx, alertID)

	require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	assert.Nil(t, alert)
}

func TestAlertService_UpdateResponderLocation_Passthrough(t *testing.T) {
	alertUsecase, alertRepo, _, _, _, _ := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().
		UpdateResponderLocation(ctx, alertID, "responder-1", 25.04, 121.56).
		Return(nil)

	err := alertUsecase.UpdateResponderLocation(ctx, alertID, "responder-1", 25.04, 121.56)

	require.NoError(t, err)
}
