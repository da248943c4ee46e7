// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/errors"
)

// ErrLocationNotFound is returned when a user has no stored location.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for latest-known location
// database operations. One row per user, upserted, never historized.
type LocationRepository interface {
	// UpsertLocation stores the latest-known position for a user.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocationByUser retrieves the latest-known position of a user.
	FindLocationByUser(ctx context.Context, userID string) (*entity.UserLocation, error)

	// FindAllLocations retrieves every stored location. Proximity filtering is
	// done in the usecase with the haversine helper.
	FindAllLocations(ctx context.Context) ([]*entity.UserLocation, error)
}
