package notification

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration. Web Push is the
// default provider; FCM is available for installed-app deployments.
func NewPushSender(params SenderParams) (service.PushSender, error) {
	provider := params.Config.Push.Provider
	if provider == "" {
		provider = constants.PushProviderWebPush
	}

	switch provider {
	case constants.PushProviderWebPush:
		params.Logger.Info("Using Web Push sender",
			slog.String("subject", params.Config.WebPush.Subject),
		)

		return NewWebPushSender(params.Config, params.Logger)

	case constants.PushProviderFCM:
		params.Logger.Info("Using FCM sender",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFCMSender(params.Ctx, params.Config)

	default:
		return nil, errors.Errorf("unknown push provider: %s", provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
