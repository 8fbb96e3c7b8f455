package bootstrap

import (
	"log/slog"

	"slotbook/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads an optional .env before the environment is processed.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded", "error", err.Error())
	}
	return config.LoadConfig()
}
