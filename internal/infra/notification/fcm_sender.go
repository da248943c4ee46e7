package notification

import (
	"context"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a Firebase Cloud Messaging sender. With this provider
// the subscription's endpoint column carries the FCM registration token and
// the VAPID key columns are unused.
func NewFCMSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{
		client: client,
	}, nil
}

// Send delivers one payload to one registration token. Unregistered or
// malformed tokens are reported as ErrEndpointGone so the caller can prune
// the subscription.
func (s *fcmSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	data := make(map[string]string, len(payload.Data))
	for key, value := range payload.Data {
		data[key] = value
	}

	message := &messaging.Message{
		Token: subscription.Endpoint,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrEndpointGone, err.Error())
		}

		return errors.Wrap(err, "failed to send FCM notification")
	}

	return nil
}
