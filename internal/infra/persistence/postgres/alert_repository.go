// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert iff the creator has no active one.
// The existence check and the insert run as a single statement so two
// concurrent triggers from the same creator cannot both succeed.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.PanicAlert) error {
	var alertM model.PanicAlertModel

	query := `
		INSERT INTO panic_alerts (creator_id, latitude, longitude, active)
		SELECT ?, ?, ?, true
		WHERE NOT EXISTS (
		  SELECT 1
		  FROM panic_alerts
		  WHERE creator_id = ?
		    AND active = true
		)
		RETURNING *
	`

	result := repo.db.WithContext(ctx).
		Raw(query, alert.CreatorID, alert.Latitude, alert.Longitude, alert.CreatorID).
		Scan(&alertM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create alert")
	}

	// No row returned means the guard suppressed the insert.
	if result.RowsAffected == 0 {
		return repository.ErrActiveAlertExists
	}

	// Update the entity with generated values
	alert.ID = alertM.ID
	alert.Active = alertM.Active
	alert.CreatedAt = alertM.CreatedAt
	alert.UpdatedAt = alertM.UpdatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.PanicAlert, error) {
	var alertM model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindActiveAlertByCreator retrieves the creator's active alert, if any.
func (repo *alertRepository) FindActiveAlertByCreator(ctx context.Context, creatorID string) (*entity.PanicAlert, error) {
	var alertM model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ? AND active = ?", creatorID, true).
		Order("created_at DESC").
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find active alert by creator")
	}

	return toAlertDomain(&alertM), nil
}

// FindActiveAlerts retrieves all active alerts, newest first.
func (repo *alertRepository) FindActiveAlerts(ctx context.Context) ([]*entity.PanicAlert, error) {
	var alertModels []*model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active alerts")
	}

	alerts := make([]*entity.PanicAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// FindActiveRespondedAlert retrieves the active, already-bound alert the user
// participates in, on either side.
func (repo *alertRepository) FindActiveRespondedAlert(ctx context.Context, userID string) (*entity.PanicAlert, error) {
	var alertM model.PanicAlertModel

	if err := repo.db.WithContext(ctx).
		Where("active = ? AND responder_id IS NOT NULL AND (creator_id = ? OR responder_id = ?)", true, userID, userID).
		Order("updated_at DESC").
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find active responded alert")
	}

	return toAlertDomain(&alertM), nil
}

// BindResponder binds responderID to the alert with a conditional update.
// Only one responder can win the row. Losing the race is reported through
// the bool, not as an error, so the caller's transaction commits the audit
// row either way.
func (repo *alertRepository) BindResponder(ctx context.Context, alertID uuid.UUID, responderID string, lat, lon *float64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PanicAlertModel{}).
		Where("id = ? AND active = ? AND responder_id IS NULL", alertID, true).
		Updates(map[string]any{
			"responder_id":        responderID,
			"responder_latitude":  lat,
			"responder_longitude": lon,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to bind responder")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	// The guard rejected the update. Re-read the row to find out why.
	alert, err := repo.FindAlertByID(ctx, alertID)
	if err != nil {
		return false, err
	}
	if !alert.Active {
		return false, repository.ErrAlertClosed
	}

	return false, nil
}

// CreateResponse appends an audit row for a respond attempt.
func (repo *alertRepository) CreateResponse(ctx context.Context, response *entity.AlertResponse) error {
	responseM := fromResponseDomain(response)

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

// UpdateResponderLocation refreshes the responder coordinates. The bound
// responder check lives in the WHERE clause, so a stale or spoofed caller
// silently updates nothing.
func (repo *alertRepository) UpdateResponderLocation(ctx context.Context, alertID uuid.UUID, responderID string, lat, lon float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PanicAlertModel{}).
		Where("id = ? AND active = ? AND responder_id = ?", alertID, true, responderID).
		Updates(map[string]any{
			"responder_latitude":  lat,
			"responder_longitude": lon,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update responder location")
	}

	return nil
}

// Deactivate sets active=false. Repeated calls are harmless.
func (repo *alertRepository) Deactivate(ctx context.Context, alertID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PanicAlertModel{}).
		Where("id = ?", alertID).
		Update("active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM PanicAlertModel to a domain PanicAlert entity.
func toAlertDomain(data *model.PanicAlertModel) *entity.PanicAlert {
	if data == nil {
		return nil
	}

	return &entity.PanicAlert{
		ID:                 data.ID,
		CreatorID:          data.CreatorID,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		Active:             data.Active,
		ResponderID:        data.ResponderID,
		ResponderLatitude:  data.ResponderLatitude,
		ResponderLongitude: data.ResponderLongitude,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromResponseDomain converts a domain AlertResponse entity to a GORM AlertResponseModel.
func fromResponseDomain(data *entity.AlertResponse) *model.AlertResponseModel {
	if data == nil {
		return nil
	}

	return &model.AlertResponseModel{
		ID:          data.ID,
		AlertID:     data.AlertID,
		ResponderID: data.ResponderID,
		CreatedAt:   data.CreatedAt,
	}
}
