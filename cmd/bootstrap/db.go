package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// tables the reservation engine cannot start without
var requiredTables = []string{"slots", "bookings", "day_summaries"}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := checkSchema(ctx, pool); err != nil {
				return err
			}
			logger.Info("データベースに接続しました",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range requiredTables {
		var exists bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass('public.' || $1) IS NOT NULL", table).Scan(&exists); err != nil {
			return errs.Wrap(err, "failed to inspect schema")
		}
		if !exists {
			return errs.Newf("table %q is missing; apply migrations/001_initial_schema.sql", table)
		}
	}
	return nil
}
