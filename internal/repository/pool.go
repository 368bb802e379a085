package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/balance/pkg/cleanup"
)

// Connect opens the pool shared by all repositories and registers its close
// as a cleanup job
func Connect(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

type rowScanner interface {
	Scan(dest ...any) error
}
