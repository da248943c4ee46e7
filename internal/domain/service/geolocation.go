package service

import "context"

// Position is a single geolocation fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// GeolocationProvider defines the interface for acquiring a user's current
// position. The tracking session bounds each acquisition with its configured
// timeout; providers must respect ctx cancellation.
type GeolocationProvider interface {
	CurrentPosition(ctx context.Context, userID string) (*Position, error)
}
