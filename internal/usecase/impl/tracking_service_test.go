package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const trackingTestTimeout = 5 * time.Second

func createTestTrackingService(t *testing.T) (
	usecase.TrackingUsecase,
	*mockRepo.MockAlertRepository,
	*mockSvc.MockGeolocationProvider,
) {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	geolocation := mockSvc.NewMockGeolocationProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Tight intervals keep the loop tests fast.
	cfg := &config.Config{
		Tracking: &config.TrackingConfig{
			ResponderInterval:  10 * time.Millisecond,
			CreatorInterval:    15 * time.Millisecond,
			StatusInterval:     10 * time.Millisecond,
			GeolocationTimeout: 100 * time.Millisecond,
		},
	}

	trackingUsecase := NewTrackingService(logger, cfg, alertRepo, geolocation)

	return trackingUsecase, alertRepo, geolocation
}

func waitDone(t *testing.T, session usecase.Session) {
	t.Helper()

	select {
	case <-session.Done():
	case <-time.After(trackingTestTimeout):
		t.Fatal("session did not finish in time")
	}
}

func TestTrackingService_StartSession_UnknownAlert(t *testing.T) {
	trackingUsecase, alertRepo, _ := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	session, err := trackingUsecase.StartSession(ctx, alertID, "user-1", usecase.TrackingHooks{})

	require.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	assert.Nil(t, session)
}

func TestTrackingService_StartSession_ClosedAlert(t *testing.T) {
	trackingUsecase, alertRepo, _ := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.PanicAlert{
		ID:        alertID,
		CreatorID: "creator-1",
		Active:    false,
	}, nil)

	session, err := trackingUsecase.StartSession(ctx, alertID, "creator-1", usecase.TrackingHooks{})

	require.ErrorIs(t, err, domainerrors.ErrAlertClosed)
	assert.Nil(t, session)
}

func TestTrackingService_StartSession_UnrelatedUserGetsNoLoops(t *testing.T) {
	trackingUsecase, alertRepo, _ := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(&entity.PanicAlert{
		ID:          alertID,
		CreatorID:   "creator-1",
		Active:      true,
		ResponderID: &responderID,
	}, nil)

	session, err := trackingUsecase.StartSession(ctx, alertID, "bystander", usecase.TrackingHooks{})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUnrelated, session.Role())
	waitDone(t, session)
}

func TestTrackingService_CreatorSession_ObservesResponderThenClosure(t *testing.T) {
	trackingUsecase, alertRepo, _ := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"
	responderLat := 25.04
	responderLon := 121.56

	var closed atomic.Bool
	alertRepo.EXPECT().
		FindAlertByID(mock.Anything, alertID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.PanicAlert, error) {
			return &entity.PanicAlert{
				ID:                 alertID,
				CreatorID:          "creator-1",
				Active:             !closed.Load(),
				ResponderID:        &responderID,
				ResponderLatitude:  &responderLat,
				ResponderLongitude: &responderLon,
			}, nil
		})

	locations := make(chan [2]float64, 16)
	closedSignal := make(chan struct{})
	hooks := usecase.TrackingHooks{
		OnResponderLocation: func(latitude, longitude float64) {
			select {
			case locations <- [2]float64{latitude, longitude}:
			default:
			}
		},
		OnAlertClosed: func() {
			close(closedSignal)
		},
	}

	session, err := trackingUsecase.StartSession(ctx, alertID, "creator-1", hooks)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCreator, session.Role())

	select {
	case observed := <-locations:
		assert.InDelta(t, responderLat, observed[0], 1e-9)
		assert.InDelta(t, responderLon, observed[1], 1e-9)
	case <-time.After(trackingTestTimeout):
		t.Fatal("creator session never observed responder coordinates")
	}

	// Cancellation from elsewhere: the next status poll must fire the closed
	// hook and end the session.
	closed.Store(true)

	select {
	case <-closedSignal:
	case <-time.After(trackingTestTimeout):
		t.Fatal("creator session never observed closure")
	}
	waitDone(t, session)
}

func TestTrackingService_ResponderSession_ReportsFixes(t *testing.T) {
	trackingUsecase, alertRepo, geolocation := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	alertRepo.EXPECT().
		FindAlertByID(mock.Anything, alertID).
		Return(&entity.PanicAlert{
			ID:          alertID,
			CreatorID:   "creator-1",
			Active:      true,
			ResponderID: &responderID,
		}, nil)

	geolocation.EXPECT().
		CurrentPosition(mock.Anything, responderID).
		Return(&service.Position{Latitude: 25.04, Longitude: 121.56}, nil)
	alertRepo.EXPECT().
		UpdateResponderLocation(mock.Anything, alertID, responderID, 25.04, 121.56).
		Return(nil)

	reported := make(chan [2]float64, 16)
	hooks := usecase.TrackingHooks{
		OnResponderLocation: func(latitude, longitude float64) {
			select {
			case reported <- [2]float64{latitude, longitude}:
			default:
			}
		},
	}

	session, err := trackingUsecase.StartSession(ctx, alertID, responderID, hooks)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleResponder, session.Role())

	select {
	case observed := <-reported:
		assert.InDelta(t, 25.04, observed[0], 1e-9)
		assert.InDelta(t, 121.56, observed[1], 1e-9)
	case <-time.After(trackingTestTimeout):
		t.Fatal("responder session never reported a fix")
	}

	// "Arrived": loops stop locally, no alert mutation involved.
	session.Stop()
	waitDone(t, session)
}

func TestTrackingService_ResponderSession_GeolocationTimeout(t *testing.T) {
	trackingUsecase, alertRepo, geolocation := createTestTrackingService(t)

	ctx := context.Background()
	alertID := uuid.New()
	responderID := "responder-1"

	alertRepo.EXPECT().
		FindAlertByID(mock.Anything, alertID).
		Return(&entity.PanicAlert{
			ID:          alertID,
			CreatorID:   "creator-1",
			Active:      true,
			ResponderID: &responderID,
		}, nil)

	geolocation.EXPECT().
		CurrentPosition(mock.Anything, responderID).
		Return(nil, context.DeadlineExceeded)

	sessionErrors := make(chan error, 16)
	hooks := usecase.TrackingHooks{
		OnError: func(err error) {
			select {
			case sessionErrors <- err:
			default:
			}
		},
	}

	session, err := trackingUsecase.StartSession(ctx, alertID, responderID, hooks)
	require.NoError(t, err)

	select {
	case sessionErr := <-sessionErrors:
		assert.ErrorIs(t, sessionErr, domainerrors.ErrGeolocationTimeout)
	case <-time.After(trackingTestTimeout):
		t.Fatal("responder session never surfaced the timeout")
	}

	// A failed fix must not kill the session.
	select {
	case <-session.Done():
		t.Fatal("session ended after a single failed fix")
	default:
	}

	session.Stop()
	waitDone(t, session)
}
