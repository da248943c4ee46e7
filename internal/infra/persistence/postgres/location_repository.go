// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation stores the latest-known position for a user, overwriting any
// previous report.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByUser retrieves the latest-known position of a user.
func (repo *locationRepository) FindLocationByUser(ctx context.Context, userID string) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user")
	}

	return toLocationDomain(&locationM), nil
}

// FindAllLocations retrieves every stored location.
func (repo *locationRepository) FindAllLocations(ctx context.Context) ([]*entity.UserLocation, error) {
	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all locations")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:    data.UserID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		UpdatedAt: data.UpdatedAt,
	}
}
