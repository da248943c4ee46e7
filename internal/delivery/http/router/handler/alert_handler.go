package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for panic alert handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// TriggerAlertRequest represents the request body for triggering an alert
type TriggerAlertRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RespondToAlertRequest represents the request body for responding to an alert
type RespondToAlertRequest struct {
	AlertID   string   `json:"alert_id" validate:"required,uuid"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// CancelAlertRequest represents the request body for cancelling an alert
type CancelAlertRequest struct {
	AlertID string `json:"alert_id" validate:"required,uuid"`
}

// RelevantAlertsRequest represents the request body for listing nearby alerts
type RelevantAlertsRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// ResponderLocationRequest represents the request body for a responder
// coordinate update
type ResponderLocationRequest struct {
	AlertID   string  `json:"alert_id" validate:"required,uuid"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// TriggerAlert handles raising a new panic alert
func (h *AlertHandler) TriggerAlert(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req TriggerAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.alertUC.TriggerAlert(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert, "Alert triggered successfully")
}

// RespondToAlert handles a responder accepting an alert
func (h *AlertHandler) RespondToAlert(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req RespondToAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alertID, err := uuid.Parse(req.AlertID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.RespondToAlert(c.Request().Context(), alertID, userID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert response accepted")
}

// CancelAlert handles the creator cancelling or resolving their alert
func (h *AlertHandler) CancelAlert(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req CancelAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alertID, err := uuid.Parse(req.AlertID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	if err := h.alertUC.CancelAlert(c.Request().Context(), alertID, userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"alert_id": alertID.String()}, "Alert cancelled successfully")
}

// GetAlertStatus handles status polling for a single alert
func (h *AlertHandler) GetAlertStatus(c echo.Context) error {
	if _, err := requireUserID(c); err != nil {
		return err
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.GetAlertStatus(c.Request().Context(), alertID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert status retrieved successfully")
}

// GetActiveAlert handles the creator's poll for their own active alert. A
// null alert means the caller is not alerting.
func (h *AlertHandler) GetActiveAlert(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	alert, err := h.alertUC.GetActiveAlert(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Active alert retrieved successfully")
}

// GetActiveResponse handles retrieving the caller's bound alert, from either
// side of the exchange
func (h *AlertHandler) GetActiveResponse(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	alert, err := h.alertUC.GetActiveResponse(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Active response retrieved successfully")
}

// RelevantAlerts handles listing active alerts near the caller
func (h *AlertHandler) RelevantAlerts(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req RelevantAlertsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alerts, err := h.alertUC.RelevantAlerts(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Relevant alerts retrieved successfully")
}

// UpdateResponderLocation handles a responder pushing fresh coordinates onto
// the alert they are bound to
func (h *AlertHandler) UpdateResponderLocation(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req ResponderLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alertID, err := uuid.Parse(req.AlertID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	if err := h.alertUC.UpdateResponderLocation(c.Request().Context(), alertID, userID, req.Latitude, req.Longitude); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"alert_id": alertID.String()}, "Responder location updated successfully")
}

// handleAppError handles application errors
func (h *AlertHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
