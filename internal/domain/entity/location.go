// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// UserLocation is the latest-known position of a user. Exactly one row per
// user; upserted, never historized. Used for nearby-user filtering and for
// seeding tracking sessions.
type UserLocation struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Point returns the position as an orb point (lon, lat order).
func (l *UserLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// NearbyUser is a UserLocation projected for a proximity query,
// carrying the distance from the query point.
type NearbyUser struct {
	UserID     string  `json:"user_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}
