package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertResponseModel is the GORM-specific struct for the 'alert_responses' table.
// It records who committed to respond to which alert, independent of whether
// the alert is later cancelled or resolved.
type AlertResponseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ResponderID string    `gorm:"type:text;not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertResponseModel) TableName() string {
	return "alert_responses"
}
