package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

type trackingService struct {
	logger      *slog.Logger
	cfg         *config.Config
	alertRepo   repository.AlertRepository
	geolocation service.GeolocationProvider
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	logger *slog.Logger,
	cfg *config.Config,
	alertRepo repository.AlertRepository,
	geolocation service.GeolocationProvider,
) usecase.TrackingUsecase {
	return &trackingService{
		logger:      logger,
		cfg:         cfg,
		alertRepo:   alertRepo,
		geolocation: geolocation,
	}
}

// trackingSession implements usecase.Session.
type trackingSession struct {
	role     entity.TrackingRole
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func (s *trackingSession) Role() entity.TrackingRole {
	return s.role
}

func (s *trackingSession) Stop() {
	s.stopOnce.Do(s.cancel)
}

func (s *trackingSession) Done() <-chan struct{} {
	return s.done
}

// StartSession computes the caller's role once and starts the loops for that
// side of the alert. The session stops on Stop, parent context cancellation,
// or when a status poll observes the alert going inactive.
func (s *trackingService) StartSession(ctx context.Context, alertID uuid.UUID, userID string, hooks usecase.TrackingHooks) (usecase.Session, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}
	if !alert.Active {
		return nil, domainerrors.ErrAlertClosed
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	session := &trackingSession{
		role:   entity.RoleFor(alert, userID),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Tracking session started",
		slog.String("alert_id", alertID.String()),
		slog.String("role", session.role.String()),
	)

	switch session.role {
	case entity.RoleCreator:
		go s.runCreatorLoop(sessionCtx, alertID, hooks, session.done)
	case entity.RoleResponder:
		go s.runResponderLoop(sessionCtx, alertID, userID, hooks, session.done)
	default:
		// Unrelated users get a session with no loops.
		close(session.done)
	}

	return session, nil
}

// runCreatorLoop watches the responder's progress. Responder coordinates are
// refreshed on the slower creator interval while closure is detected on the
// tighter status interval.
func (s *trackingService) runCreatorLoop(ctx context.Context, alertID uuid.UUID, hooks usecase.TrackingHooks, done chan struct{}) {
	defer close(done)

	refreshTicker := time.NewTicker(s.cfg.Tracking.CreatorInterval)
	defer refreshTicker.Stop()
	statusTicker := time.NewTicker(s.cfg.Tracking.StatusInterval)
	defer statusTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-statusTicker.C:
			alert, ok := s.pollAlert(ctx, alertID, hooks)
			if !ok {
				continue
			}
			if !alert.Active {
				fireClosed(hooks)

				return
			}

		case <-refreshTicker.C:
			alert, ok := s.pollAlert(ctx, alertID, hooks)
			if !ok {
				continue
			}
			if !alert.Active {
				fireClosed(hooks)

				return
			}
			if alert.ResponderLatitude != nil && alert.ResponderLongitude != nil {
				fireLocation(hooks, *alert.ResponderLatitude, *alert.ResponderLongitude)
			}
		}
	}
}

// runResponderLoop reports the responder's position on every interval and
// watches for cancellation. A failed fix aborts that attempt only; the loop
// keeps its cadence.
func (s *trackingService) runResponderLoop(ctx context.Context, alertID uuid.UUID, userID string, hooks usecase.TrackingHooks, done chan struct{}) {
	defer close(done)

	reportTicker := time.NewTicker(s.cfg.Tracking.ResponderInterval)
	defer reportTicker.Stop()
	statusTicker := time.NewTicker(s.cfg.Tracking.StatusInterval)
	defer statusTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-statusTicker.C:
			alert, ok := s.pollAlert(ctx, alertID, hooks)
			if !ok {
				continue
			}
			if !alert.Active {
				fireClosed(hooks)

				return
			}

		case <-reportTicker.C:
			s.reportPosition(ctx, alertID, userID, hooks)
		}
	}
}

// reportPosition acquires one geolocation fix, bounded by the configured
// timeout, and writes it to the alert row.
func (s *trackingService) reportPosition(ctx context.Context, alertID uuid.UUID, userID string, hooks usecase.TrackingHooks) {
	fixCtx, cancel := context.WithTimeout(ctx, s.cfg.Tracking.GeolocationTimeout)
	defer cancel()

	position, err := s.geolocation.CurrentPosition(fixCtx, userID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fireError(hooks, domainerrors.ErrGeolocationTimeout)

			return
		}
		fireError(hooks, err)

		return
	}

	if err := s.alertRepo.UpdateResponderLocation(ctx, alertID, userID, position.Latitude, position.Longitude); err != nil {
		fireError(hooks, err)

		return
	}

	fireLocation(hooks, position.Latitude, position.Longitude)
}

// pollAlert reads the alert, routing read failures to the error hook.
func (s *trackingService) pollAlert(ctx context.Context, alertID uuid.UUID, hooks usecase.TrackingHooks) (*entity.PanicAlert, bool) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		// An alert deleted out from under the session counts as closed.
		if errors.Is(err, repository.ErrAlertNotFound) {
			return &entity.PanicAlert{Active: false}, true
		}
		if ctx.Err() == nil {
			fireError(hooks, err)
		}

		return nil, false
	}

	return alert, true
}

func fireClosed(hooks usecase.TrackingHooks) {
	if hooks.OnAlertClosed != nil {
		hooks.OnAlertClosed()
	}
}

func fireLocation(hooks usecase.TrackingHooks, latitude, longitude float64) {
	if hooks.OnResponderLocation != nil {
		hooks.OnResponderLocation(latitude, longitude)
	}
}

func fireError(hooks usecase.TrackingHooks, err error) {
	if hooks.OnError != nil {
		hooks.OnError(err)
	}
}
