// Package notification contains push delivery providers.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

type webPushSender struct {
	logger  *slog.Logger
	options *webpush.Options
}

// NewWebPushSender creates a Web Push sender using the configured VAPID keys.
func NewWebPushSender(cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.WebPush.PublicKey == "" || cfg.WebPush.PrivateKey == "" {
		return nil, errors.New("webpush: VAPID key pair is required")
	}

	return &webPushSender{
		logger: logger,
		options: &webpush.Options{
			Subscriber:      cfg.WebPush.Subject,
			VAPIDPublicKey:  cfg.WebPush.PublicKey,
			VAPIDPrivateKey: cfg.WebPush.PrivateKey,
			TTL:             cfg.WebPush.TTL,
		},
	}, nil
}

// Send encrypts and posts one payload to the subscription's push service.
// A 404 or 410 response means the browser dropped the subscription, reported
// as ErrEndpointGone so the caller can prune the row.
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "webpush: failed to marshal payload")
	}

	resp, err := webpush.SendNotificationWithContext(ctx, message, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, s.options)
	if err != nil {
		return errors.Wrap(err, "webpush: failed to send notification")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return errors.Wrapf(service.ErrEndpointGone, "webpush: push service returned %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Web Push delivery rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("endpoint", subscription.Endpoint),
		)

		return errors.Errorf("webpush: push service returned %d", resp.StatusCode)
	}

	return nil
}
