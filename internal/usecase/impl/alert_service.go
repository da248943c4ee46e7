package impl

import (
	"context"
	"fmt"
	"log/slog"

	"pulse/config"
	deliveryctx "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/geo"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	notificationIcon  = "/icon-192.png"
	notificationBadge = "/badge-72.png"
)

type alertService struct {
	logger       *slog.Logger
	cfg          *config.Config
	alertRepo    repository.AlertRepository
	locationRepo repository.LocationRepository
	txManager    repository.TransactionManager
	pushUsecase  usecase.PushUsecase
	publisher    service.EventPublisher
}

// NewAlertService creates a new alert lifecycle service instance
func NewAlertService(
	logger *slog.Logger,
	cfg *config.Config,
	alertRepo repository.AlertRepository,
	locationRepo repository.LocationRepository,
	txManager repository.TransactionManager,
	pushUsecase usecase.PushUsecase,
	publisher service.EventPublisher,
) usecase.AlertUsecase {
	return &alertService{
		logger:       logger,
		cfg:          cfg,
		alertRepo:    alertRepo,
		locationRepo: locationRepo,
		txManager:    txManager,
		pushUsecase:  pushUsecase,
		publisher:    publisher,
	}
}

// TriggerAlert creates the alert, then broadcasts to everyone else. The alert
// row is the source of truth: once it commits, delivery trouble is reported
// through logs and counters, never as a trigger failure.
func (s *alertService) TriggerAlert(ctx context.Context, creatorID string, latitude, longitude float64) (*entity.PanicAlert, error) {
	alert := &entity.PanicAlert{
		CreatorID: creatorID,
		Latitude:  latitude,
		Longitude: longitude,
		Active:    true,
	}

	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrActiveAlertExists) {
			return nil, domainerrors.ErrAlertAlreadyActive
		}

		return nil, errors.Wrap(err, "failed to create alert")
	}

	payload := &service.PushPayload{
		Title:              "緊急求救警報",
		Body:               "附近有人發出緊急求救，請查看並提供協助",
		Icon:               notificationIcon,
		Badge:              notificationBadge,
		RequireInteraction: true,
		Data: map[string]string{
			"type":          constants.NotificationTypePanicAlert,
			"alertId":       alert.ID.String(),
			"triggerUserId": creatorID,
			"latitude":      fmt.Sprintf("%f", latitude),
			"longitude":     fmt.Sprintf("%f", longitude),
		},
	}

	sent, failed, err := s.pushUsecase.BroadcastExcluding(ctx, creatorID, payload)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Alert broadcast failed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "Alert broadcast settled",
			slog.String("alert_id", alert.ID.String()),
			slog.Int("sent", sent),
			slog.Int("failed", failed),
		)
	}

	// Best-effort event for the async worker's nearby-user redelivery.
	event := &service.AlertEvent{
		RequestID: deliveryctx.GetRequestIDFromContext(ctx),
		AlertID:   alert.ID.String(),
		CreatorID: creatorID,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to publish alert event",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return alert, nil
}

// RespondToAlert records the respond attempt and binds the responder in one
// transaction. Exactly one caller ever wins the bind, but every attempt
// against a live alert leaves an audit row, so a lost race commits the row
// and is only rejected afterwards.
func (s *alertService) RespondToAlert(ctx context.Context, alertID uuid.UUID, responderID string, latitude, longitude *float64) (*entity.PanicAlert, error) {
	var bound bool
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		alertRepo := repoFactory.NewAlertRepository()

		response := &entity.AlertResponse{
			AlertID:     alertID,
			ResponderID: responderID,
		}
		if err := alertRepo.CreateResponse(ctx, response); err != nil {
			return err
		}

		var err error
		bound, err = alertRepo.BindResponder(ctx, alertID, responderID, latitude, longitude)

		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlertNotFound):
			return nil, domainerrors.ErrAlertNotFound
		case errors.Is(err, repository.ErrAlertClosed):
			return nil, domainerrors.ErrAlertClosed
		}

		return nil, errors.Wrap(err, "failed to respond to alert")
	}

	if !bound {
		return nil, domainerrors.ErrAlertAlreadyResponded
	}

	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload alert after bind")
	}

	s.notifyCreatorOfResponse(ctx, alert, responderID)

	return alert, nil
}

// notifyCreatorOfResponse pushes the panic-response notification with both
// coordinate pairs to the creator. Best-effort.
func (s *alertService) notifyCreatorOfResponse(ctx context.Context, alert *entity.PanicAlert, responderID string) {
	data := map[string]string{
		"type":            constants.NotificationTypePanicResponse,
		"alertId":         alert.ID.String(),
		"responderUserId": responderID,
		"alertLatitude":   fmt.Sprintf("%f", alert.Latitude),
		"alertLongitude":  fmt.Sprintf("%f", alert.Longitude),
	}
	if alert.ResponderLatitude != nil && alert.ResponderLongitude != nil {
		data["responderLatitude"] = fmt.Sprintf("%f", *alert.ResponderLatitude)
		data["responderLongitude"] = fmt.Sprintf("%f", *alert.ResponderLongitude)
	}

	payload := &service.PushPayload{
		Title:              "有人回應了你的求救",
		Body:               "回應者正在前往你的位置，點擊查看",
		Icon:               notificationIcon,
		Badge:              notificationBadge,
		RequireInteraction: true,
		Data:               data,
	}

	if _, _, err := s.pushUsecase.SendToUser(ctx, alert.CreatorID, payload); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to notify creator of response",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// CancelAlert deactivates the alert on behalf of its creator. The existence
// of an alert is not revealed to other callers.
func (s *alertService) CancelAlert(ctx context.Context, alertID uuid.UUID, userID string) error {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound
		}

		return errors.Wrap(err, "failed to find alert")
	}

	if alert.CreatorID != userID {
		return domainerrors.ErrAlertUnauthorized
	}

	if err := s.alertRepo.Deactivate(ctx, alertID); err != nil {
		return errors.Wrap(err, "failed to deactivate alert")
	}

	if alert.Active && alert.ResponderID != nil {
		payload := &service.PushPayload{
			Title: "警報已取消",
			Body:  "求救者已取消警報，感謝你的協助",
			Icon:  notificationIcon,
			Badge: notificationBadge,
			Data: map[string]string{
				"type":    constants.NotificationTypeAlertCancelled,
				"alertId": alert.ID.String(),
			},
		}

		if _, _, err := s.pushUsecase.SendToUser(ctx, *alert.ResponderID, payload); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to notify responder of cancellation",
				slog.String("alert_id", alert.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

// GetAlertStatus retrieves the alert for status polling.
func (s *alertService) GetAlertStatus(ctx context.Context, alertID uuid.UUID) (*entity.PanicAlert, error) {
	alert, err := s.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	return alert, nil
}

// GetActiveAlert retrieves the caller's own active alert, or nil when they
// have none. Backs the creator's "am I still alerting" poll after a missed
// push or a page reload.
func (s *alertService) GetActiveAlert(ctx context.Context, creatorID string) (*entity.PanicAlert, error) {
	alert, err := s.alertRepo.FindActiveAlertByCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active alert by creator")
	}

	return alert, nil
}

// GetActiveResponse retrieves the bound alert the user participates in, or
// nil when there is none: polling clients treat the empty answer as a normal
// state, not an error. When the responder has not reported coordinates on
// the alert row yet, the latest-known location from the location store fills
// the gap.
func (s *alertService) GetActiveResponse(ctx context.Context, userID string) (*entity.PanicAlert, error) {
	alert, err := s.alertRepo.FindActiveRespondedAlert(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active responded alert")
	}

	if alert.ResponderID != nil && (alert.ResponderLatitude == nil || alert.ResponderLongitude == nil) {
		location, err := s.locationRepo.FindLocationByUser(ctx, *alert.ResponderID)
		if err == nil {
			alert.ResponderLatitude = &location.Latitude
			alert.ResponderLongitude = &location.Longitude
		} else if !errors.Is(err, repository.ErrLocationNotFound) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to seed responder location",
				slog.String("alert_id", alert.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return alert, nil
}

// RelevantAlerts lists active alerts of other creators within the relevance
// radius, with the distance from the caller's position.
func (s *alertService) RelevantAlerts(ctx context.Context, userID string, latitude, longitude float64) ([]*entity.RelevantAlert, error) {
	alerts, err := s.alertRepo.FindActiveAlerts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts")
	}

	origin := orb.Point{longitude, latitude}
	relevant := make([]*entity.RelevantAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.CreatorID == userID {
			continue
		}

		distance := geo.DistanceKm(origin, orb.Point{alert.Longitude, alert.Latitude})
		if distance > s.cfg.Alert.RelevanceRadiusKm {
			continue
		}

		relevant = append(relevant, &entity.RelevantAlert{
			PanicAlert: *alert,
			DistanceKm: distance,
		})
	}

	return relevant, nil
}

// UpdateResponderLocation refreshes the bound responder's coordinates.
func (s *alertService) UpdateResponderLocation(ctx context.Context, alertID uuid.UUID, responderID string, latitude, longitude float64) error {
	if err := s.alertRepo.UpdateResponderLocation(ctx, alertID, responderID, latitude, longitude); err != nil {
		return errors.Wrap(err, "failed to update responder location")
	}

	return nil
}
