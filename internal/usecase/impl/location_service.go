package impl

import (
	"context"
	"log/slog"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	"pulse/internal/geo"
	"pulse/internal/usecase"

	"github.com/paulmach/orb"
)

type locationService struct {
	logger       *slog.Logger
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(
	logger *slog.Logger,
	locationRepo repository.LocationRepository,
) usecase.LocationUsecase {
	return &locationService{
		logger:       logger,
		locationRepo: locationRepo,
	}
}

// ReportLocation upserts the caller's latest-known position.
func (s *locationService) ReportLocation(ctx context.Context, userID string, latitude, longitude float64) (*entity.UserLocation, error) {
	location := &entity.UserLocation{
		UserID:    userID,
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to upsert location")
	}

	return location, nil
}

// GetUserLocation retrieves one user's latest-known position.
func (s *locationService) GetUserLocation(ctx context.Context, userID string) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

// NearbyUsers filters the stored locations down to those within radiusKm of
// the given point, excluding the given user, with per-user distances.
func (s *locationService) NearbyUsers(ctx context.Context, latitude, longitude, radiusKm float64, excludedUserID string) ([]*entity.NearbyUser, error) {
	locations, err := s.locationRepo.FindAllLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	origin := orb.Point{longitude, latitude}
	nearby := make([]*entity.NearbyUser, 0, len(locations))
	for _, location := range locations {
		if location.UserID == excludedUserID {
			continue
		}

		distance := geo.DistanceKm(origin, location.Point())
		if distance > radiusKm {
			continue
		}

		nearby = append(nearby, &entity.NearbyUser{
			UserID:     location.UserID,
			Latitude:   location.Latitude,
			Longitude:  location.Longitude,
			DistanceKm: distance,
		})
	}

	return nearby, nil
}
