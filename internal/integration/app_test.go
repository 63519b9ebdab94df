package integration_test

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bekbolotov/movie-catalog-api/internal/app"
	"github.com/bekbolotov/movie-catalog-api/internal/mailer"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	db, err := pgxpool.New(context.Background(), cfg.DB.Dsn)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	err = redisClient.Ping(context.Background()).Err()
	if err != nil {
		db.Close()
		return nil, err
	}

	mockMailer := mailer.NewMockMailer()

	application := app.New(cfg, testLogger(), db, redisClient, app.WithMailer(mockMailer))

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Mailer: mockMailer,
	}, nil
}
