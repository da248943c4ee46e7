package model

import (
	"time"

	"github.com/google/uuid"
)

// PanicAlertModel is the GORM-specific struct for the 'panic_alerts' table.
// One row per triggered alert; responder columns stay NULL until someone binds.
type PanicAlertModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID          string    `gorm:"type:text;not null;index"`
	Latitude           float64   `gorm:"type:double precision;not null"`
	Longitude          float64   `gorm:"type:double precision;not null"`
	Active             bool      `gorm:"not null;default:true;index"`
	ResponderID        *string   `gorm:"type:text;index"`
	ResponderLatitude  *float64  `gorm:"type:double precision"`
	ResponderLongitude *float64  `gorm:"type:double precision"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PanicAlertModel) TableName() string {
	return "panic_alerts"
}
