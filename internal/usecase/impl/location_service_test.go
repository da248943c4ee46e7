package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T) (
	usecase.LocationUsecase,
	*mockRepo.MockLocationRepository,
) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	locationUsecase := NewLocationService(logger, locationRepo)

	return locationUsecase, locationRepo
}

func TestLocationService_ReportLocation_Success(t *testing.T) {
	locationUsecase, locationRepo := createTestLocationService(t)

	ctx := context.Background()

	locationRepo.EXPECT().
		UpsertLocation(ctx, &entity.UserLocation{UserID: "user-1", Latitude: 25.033, Longitude: 121.5654}).
		Return(nil)

	location, err := locationUsecase.ReportLocation(ctx, "user-1", 25.033, 121.5654)

	require.NoError(t, err)
	assert.Equal(t, "user-1", location.UserID)
	assert.InDelta(t, 25.033, location.Latitude, 1e-9)
	assert.InDelta(t, 121.5654, location.Longitude, 1e-9)
}

func TestLocationService_GetUserLocation_NotFound(t *testing.T) {
	locationUsecase, locationRepo := createTestLocationService(t)

	ctx := context.Background()

	locationRepo.EXPECT().FindLocationByUser(ctx, "user-1").Return(nil, repository.ErrLocationNotFound)

	location, err := locationUsecase.GetUserLocation(ctx, "user-1")

	require.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	assert.Nil(t, location)
}

func TestLocationService_NearbyUsers_FiltersByRadiusAndExclusion(t *testing.T) {
	locationUsecase, locationRepo := createTestLocationService(t)

	ctx := context.Background()

	// Query point is Taipei Main Station with a 20km radius. The excluded
	// caller and a user in Taoyuan (about 34km away) must both drop out.
	locationRepo.EXPECT().FindAllLocations(ctx).Return([]*entity.UserLocation{
		{UserID: "me", Latitude: 25.0478, Longitude: 121.5170},
		{UserID: "close-by", Latitude: 25.0330, Longitude: 121.5654},
		{UserID: "taoyuan", Latitude: 24.9936, Longitude: 121.3010},
	}, nil)

	nearby, err := locationUsecase.NearbyUsers(ctx, 25.0478, 121.5170, 20.0, "me")

	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "close-by", nearby[0].UserID)
	assert.Greater(t, nearby[0].DistanceKm, 0.0)
	assert.Less(t, nearby[0].DistanceKm, 20.0)
}

func TestLocationService_NearbyUsers_EmptyStore(t *testing.T) {
	locationUsecase, locationRepo := createTestLocationService(t)

	ctx := context.Background()

	locationRepo.EXPECT().FindAllLocations(ctx).Return([]*entity.UserLocation{}, nil)

	nearby, err := locationUsecase.NearbyUsers(ctx, 25.0478, 121.5170, 20.0, "me")

	require.NoError(t, err)
	assert.Empty(t, nearby)
}
