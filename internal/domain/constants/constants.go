// Package constants holds shared identifiers used across deliveries.
package constants

// Environment names.
const (
	EnvDevelop = "develop"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push provider names.
const (
	PushProviderWebPush = "webpush"
	PushProviderFCM     = "fcm"
)

// Notification types carried in PushPayload.Data["type"]. These are the
// client contract: the receiving worker routes follow-up actions on them.
const (
	NotificationTypePanicAlert     = "panic-alert"
	NotificationTypePanicResponse  = "panic-response"
	NotificationTypeAlertCancelled = "alert-cancelled"
)

// Notification action identifiers the receiving client attaches to the
// displayed notification.
const (
	ActionRespond      = "respond"
	ActionDecline      = "decline"
	ActionViewResponse = "view-response"
	ActionView         = "view"
	ActionClose        = "close"
)
