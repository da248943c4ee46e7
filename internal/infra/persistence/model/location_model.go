package model

import "time"

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// One row per user, overwritten on every report.
type UserLocationModel struct {
	UserID    string  `gorm:"type:text;primary_key"`
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
