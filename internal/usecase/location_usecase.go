package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// LocationUsecase defines the interface for latest-known location use cases.
type LocationUsecase interface {
	// ReportLocation upserts the caller's latest-known position.
	ReportLocation(ctx context.Context, userID string, latitude, longitude float64) (*entity.UserLocation, error)

	// GetUserLocation retrieves one user's latest-known position.
	GetUserLocation(ctx context.Context, userID string) (*entity.UserLocation, error)

	// NearbyUsers lists users whose latest-known position lies within radiusKm
	// of the given point, excluding excludedUserID, with computed distances.
	NearbyUsers(ctx context.Context, latitude, longitude, radiusKm float64, excludedUserID string) ([]*entity.NearbyUser, error)
}
