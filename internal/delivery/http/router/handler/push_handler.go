package handler

import (
	"log/slog"
	"net/http"

	"pulse/config"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// PushHandler holds dependencies for push subscription handlers
type PushHandler struct {
	cfg    *config.Config
	pushUC usecase.PushUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		cfg:    params.Config,
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// SubscribeRequest mirrors the browser PushSubscription JSON shape
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// UnsubscribeRequest represents the request body for removing a subscription
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// Subscribe handles registering or refreshing a push subscription
func (h *PushHandler) Subscribe(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription := &entity.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}

	if err := h.pushUC.Subscribe(c.Request().Context(), subscription); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"endpoint": req.Endpoint}, "Subscription registered successfully")
}

// Unsubscribe handles removing a push subscription
func (h *PushHandler) Unsubscribe(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.pushUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"endpoint": req.Endpoint}, "Subscription removed successfully")
}

// VAPIDPublicKey hands the client the key it needs to create a subscription
func (h *PushHandler) VAPIDPublicKey(c echo.Context) error {
	if h.cfg.WebPush == nil || h.cfg.WebPush.PublicKey == "" {
		return response.NotFound(c, "VAPID_NOT_CONFIGURED", "Web push is not configured")
	}

	return response.Success(c, http.StatusOK, map[string]string{"public_key": h.cfg.WebPush.PublicKey}, "VAPID public key retrieved successfully")
}

// handleAppError handles application errors
func (h *PushHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
