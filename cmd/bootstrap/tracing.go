package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(InitTracing),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Init(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.OTLPEndpoint == "" {
		logger.Info("OTLPエンドポイント未設定のためトレースはエクスポートされません")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
