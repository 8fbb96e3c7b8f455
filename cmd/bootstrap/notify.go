package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/infra/notify"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier publishes to RabbitMQ when RABBITMQ_URL is set and logs events otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Notifier, error) {
	if cfg.Notify.RabbitURL == "" {
		logger.Info("RABBITMQ_URL未設定のため予約イベントはログに出力します")
		return notify.NewLogNotifier(logger), nil
	}

	publisher, err := notify.NewPublisher(cfg.Notify.RabbitURL, cfg.Notify.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
