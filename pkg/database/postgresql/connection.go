package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"forms-backend/pkg/config"
)

// ConnectDB builds the shared connection pool. The pool ceiling is the only
// backpressure mechanism in the system, so it comes from configuration.
func ConnectDB(cfg config.PostgresConfig) *pgxpool.Pool {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		log.Fatalf("invalid database DSN: %v", err)
	}
	poolConfig.MaxConns = int32(cfg.PoolSize)

	dbpool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("failed to create the database pool: %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("failed to ping the database: %v", err)
	}

	log.Println("connected to PostgreSQL")
	return dbpool
}
