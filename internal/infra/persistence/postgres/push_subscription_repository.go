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

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// UpsertSubscription persists a subscription. The endpoint is the natural key:
// a browser re-subscribing reuses its endpoint, so the row is refreshed in
// place, including the owning user when the account changed on that device.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth"}),
		}).
		Create(subscriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// DeleteSubscription removes the row matching (userID, endpoint). Deleting an
// already-pruned subscription is not an error.
func (repo *pushSubscriptionRepository) DeleteSubscription(ctx context.Context, userID, endpoint string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}

// FindSubscriptionsByUser retrieves all subscriptions of one user.
func (repo *pushSubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID string) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toSubscriptionDomainList(subscriptionModels), nil
}

// FindSubscriptionsExcludingUser retrieves every subscription not owned by
// excludedUserID. This is the broadcast audience of a fresh alert.
func (repo *pushSubscriptionRepository) FindSubscriptionsExcludingUser(ctx context.Context, excludedUserID string) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id <> ?", excludedUserID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions excluding user")
	}

	return toSubscriptionDomainList(subscriptionModels), nil
}

// FindSubscriptionsForUsers retrieves all subscriptions for a list of user IDs.
func (repo *pushSubscriptionRepository) FindSubscriptionsForUsers(ctx context.Context, userIDs []string) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []*entity.PushSubscription{}, nil
	}

	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions for users")
	}

	return toSubscriptionDomainList(subscriptionModels), nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		CreatedAt: data.CreatedAt,
	}
}

func toSubscriptionDomainList(data []*model.PushSubscriptionModel) []*entity.PushSubscription {
	subscriptions := make([]*entity.PushSubscription, 0, len(data))
	for _, subscriptionM := range data {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions
}

// fromSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		CreatedAt: data.CreatedAt,
	}
}
