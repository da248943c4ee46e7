package service

import (
	"context"
)

// AlertEvent represents a triggered alert published on the notification bus
// for async processing by the alert worker.
type AlertEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string  `json:"alert_id"`
	CreatorID string  `json:"creator_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing alert events to a
// message queue. It is constructed once per process and injected; components
// never reach for a process-global bus.
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
