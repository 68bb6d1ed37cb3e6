package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/GoSim-25-26J-441/taskboard-backend/config"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
)

// OpenDB connects to postgres and, when enabled, applies pending migrations.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(postgres.URL(cfg), "up"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db migrate: %w", err)
		}
		log.Printf("database migrations applied")
	}

	return db, nil
}
