package handler

import (
	"encoding/json"
	"fmt"
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

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler streams a live tracking session over Server-Sent Events.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// trackingEvent is one SSE frame pushed to the client.
type trackingEvent struct {
	Type      string   `json:"type"` // role | location | closed | error
	Role      string   `json:"role,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Track opens an SSE stream for the caller's side of an active alert.
// Creators receive responder positions; responders receive confirmations of
// their reported fixes. The stream ends when the alert closes, the client
// disconnects, or the session is stopped.
func (h *TrackingHandler) Track(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	ctx := c.Request().Context()

	// Hooks run on session goroutines; a buffered channel decouples them from
	// the write loop and a full buffer drops frames instead of blocking.
	events := make(chan trackingEvent, 16)
	offer := func(event trackingEvent) {
		select {
		case events <- event:
		default:
		}
	}

	hooks := usecase.TrackingHooks{
		OnResponderLocation: func(latitude, longitude float64) {
			offer(trackingEvent{Type: "location", Latitude: &latitude, Longitude: &longitude})
		},
		OnAlertClosed: func() {
			offer(trackingEvent{Type: "closed"})
		},
		OnError: func(err error) {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				offer(trackingEvent{Type: "error", Error: appErr.ErrorCode()})

				return
			}
			offer(trackingEvent{Type: "error", Error: "TRACKING_ERROR"})
		},
	}

	session, err := h.trackingUC.StartSession(ctx, alertID, userID, hooks)
	if err != nil {
		return h.handleAppError(c, err)
	}
	defer session.Stop()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)

	if err := writeSSE(resp, trackingEvent{Type: "role", Role: session.Role().String()}); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-session.Done():
			// Drain whatever the loops pushed before exiting, the closed
			// frame included.
			for {
				select {
				case event := <-events:
					if err := writeSSE(resp, event); err != nil {
						return nil
					}
				default:
					return nil
				}
			}

		case event := <-events:
			if err := writeSSE(resp, event); err != nil {
				return nil
			}
		}
	}
}

// writeSSE writes one event frame and flushes it to the client.
func writeSSE(resp *echo.Response, event trackingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
		return errors.WithStack(err)
	}
	resp.Flush()

	return nil
}

// handleAppError handles application errors
func (h *TrackingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
