// Package geolocation provides server-side geolocation fixes.
package geolocation

import (
	"context"

	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
)

type storeProvider struct {
	locationRepo repository.LocationRepository
}

// NewStoreProvider creates a GeolocationProvider backed by the latest-known
// location store. The device reports its position through the location
// endpoint; server-side tracking loops read it back from here.
func NewStoreProvider(locationRepo repository.LocationRepository) service.GeolocationProvider {
	return &storeProvider{
		locationRepo: locationRepo,
	}
}

// CurrentPosition returns the user's latest reported position.
func (p *storeProvider) CurrentPosition(ctx context.Context, userID string) (*service.Position, error) {
	location, err := p.locationRepo.FindLocationByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read latest-known location")
	}

	return &service.Position{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}
