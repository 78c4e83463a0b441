package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zerobuild-ai/zerobuild-backend/config"
	"github.com/zerobuild-ai/zerobuild-backend/internal/records"
	"github.com/zerobuild-ai/zerobuild-backend/internal/storage/postgres"
)

// OpenRedis connects and pings redis.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Stores holds the record store and the connections behind it.
type Stores struct {
	Records records.Store
	DB      *sql.DB
	Redis   *redis.Client
}

func (s *Stores) Close() {
	if s.DB != nil {
		_ = s.DB.Close()
	}
	if s.Redis != nil {
		_ = s.Redis.Close()
	}
}

// OpenStores builds the record store selected by STORE_BACKEND.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	s := &Stores{}

	if cfg.UsesRedis() {
		client, err := OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		s.Redis = client
	}

	switch cfg.Store.Backend {
	case config.StoreRedis:
		s.Records = records.NewRedisStore(s.Redis)
	case config.StorePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("db connect: %w", err)
		}
		s.DB = db
		pg := records.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.Records = pg
	default:
		s.Records = records.NewMemoryStore()
	}

	return s, nil
}
