package postgres

import (
	"context"
	"fmt"

	"driver-service/internal/pkg/config"
	"driver-service/migrations"
	"driver-service/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает embedded-миграции через database/sql адаптер pgx.
// Отдельное соединение: goose не умеет работать поверх pgxpool.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	connCfg, err := pgx.ParseConfig(newDsn(cfg))
	if err != nil {
		return fmt.Errorf("parsing migration dsn: %w", err)
	}

	db := stdlib.OpenDB(*connCfg)
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.With(
				logger.NewField("error", closeErr),
			).Error("failed to close migration connection")
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
