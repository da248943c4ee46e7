// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler    *handler.AlertHandler
	PushHandler     *handler.PushHandler
	LocationHandler *handler.LocationHandler
	TrackingHandler *handler.TrackingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler    *handler.AlertHandler
	pushHandler     *handler.PushHandler
	locationHandler *handler.LocationHandler
	trackingHandler *handler.TrackingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:    params.AlertHandler,
		pushHandler:     params.PushHandler,
		locationHandler: params.LocationHandler,
		trackingHandler: params.TrackingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Panic alert lifecycle
	alertGroup := api.Group("/panic-alerts")
	{
		alertGroup.POST("/trigger", r.alertHandler.TriggerAlert)
		alertGroup.POST("/respond", r.alertHandler.RespondToAlert)
		alertGroup.POST("/cancel", r.alertHandler.CancelAlert)
		alertGroup.POST("/relevant", r.alertHandler.RelevantAlerts)
		alertGroup.POST("/responder-location", r.alertHandler.UpdateResponderLocation)
		alertGroup.GET("/active", r.alertHandler.GetActiveAlert)
		alertGroup.GET("/active-response", r.alertHandler.GetActiveResponse)
		alertGroup.GET("/:id", r.alertHandler.GetAlertStatus)
		alertGroup.GET("/:id/track", r.trackingHandler.Track)
	}

	// Push subscription directory
	pushGroup := api.Group("/push")
	{
		pushGroup.POST("/subscribe", r.pushHandler.Subscribe)
		pushGroup.POST("/unsubscribe", r.pushHandler.Unsubscribe)
		pushGroup.GET("/vapid-public-key", r.pushHandler.VAPIDPublicKey)
	}

	// Latest-known locations
	locationGroup := api.Group("/locations")
	{
		locationGroup.POST("", r.locationHandler.ReportLocation)
		locationGroup.GET("/me", r.locationHandler.GetMyLocation)
	}
}
