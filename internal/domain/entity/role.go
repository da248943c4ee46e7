// Package entity contains the core business objects of the project.
package entity

// TrackingRole identifies which side of a tracking session a user is on.
// It is computed once per session and passed down, instead of re-deriving
// it from id comparisons in every component.
type TrackingRole int

const (
	// RoleUnrelated means the user is neither the creator nor the bound responder.
	RoleUnrelated TrackingRole = iota
	// RoleCreator means the user triggered the alert.
	RoleCreator
	// RoleResponder means the user is the responder bound to the alert.
	RoleResponder
)

// String returns the role name for logging.
func (r TrackingRole) String() string {
	switch r {
	case RoleCreator:
		return "creator"
	case RoleResponder:
		return "responder"
	default:
		return "unrelated"
	}
}

// RoleFor computes the tracking role of userID with respect to an alert.
func RoleFor(alert *PanicAlert, userID string) TrackingRole {
	if alert == nil {
		return RoleUnrelated
	}
	if alert.CreatorID == userID {
		return RoleCreator
	}
	if alert.ResponderID != nil && *alert.ResponderID == userID {
		return RoleResponder
	}

	return RoleUnrelated
}
