package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying alert events. It
// redelivers the alert to users whose latest-known position is near the
// creator, catching anyone the synchronous broadcast missed.
type PushHandler struct {
	verifyPushAuth bool
	nearbyRadiusKm float64
	logger         *slog.Logger
	locationUC     usecase.LocationUsecase
	pushUC         usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LocationUC usecase.LocationUsecase
	PushUC     usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	nearbyRadiusKm := 20.0
	if params.Config.Alert != nil && params.Config.Alert.NearbyRadiusKm > 0 {
		nearbyRadiusKm = params.Config.Alert.NearbyRadiusKm
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		nearbyRadiusKm: nearbyRadiusKm,
		logger:         params.Logger,
		locationUC:     params.LocationUC,
		pushUC:         params.PushUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse alert event
	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("creator_id", event.CreatorID),
	)

	// Process the alert event
	if err := h.processAlertEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed successfully",
		slog.String("alert_id", event.AlertID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processAlertEvent targets users near the alert's origin and redelivers the
// panic-alert notification to them.
func (h *PushHandler) processAlertEvent(ctx context.Context, reqLogger *slog.Logger, event *service.AlertEvent) error {
	nearby, err := h.locationUC.NearbyUsers(ctx, event.Latitude, event.Longitude, h.nearbyRadiusKm, event.CreatorID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(nearby) == 0 {
		reqLogger.Info("[Worker] No nearby users to notify",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	userIDs := make([]string, 0, len(nearby))
	for _, user := range nearby {
		userIDs = append(userIDs, user.UserID)
	}

	payload := &service.PushPayload{
		Title:              "緊急求救警報",
		Body:               "附近有人發出緊急求救，請查看並提供協助",
		Icon:               "/icon-192.png",
		Badge:              "/badge-72.png",
		RequireInteraction: true,
		Data: map[string]string{
			"type":          constants.NotificationTypePanicAlert,
			"alertId":       event.AlertID,
			"triggerUserId": event.CreatorID,
			"latitude":      fmt.Sprintf("%f", event.Latitude),
			"longitude":     fmt.Sprintf("%f", event.Longitude),
		},
	}

	sent, failed, err := h.pushUC.SendToUsers(ctx, userIDs, payload)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	reqLogger.Info("[Worker] Nearby redelivery settled",
		slog.String("alert_id", event.AlertID),
		slog.Int("targets", len(userIDs)),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
