package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"leafs-result-service/internal/config"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/store"
)

// buildStore selects the persistence backend from config. Unknown backends
// fall back to the filesystem store rather than failing startup.
func buildStore(cfg config.StoreConfig, logger *slog.Logger) store.Store {
	switch cfg.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore()
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return store.NewRedisStore(client)
	case config.StoreFS:
		return store.NewFSStore(cfg.Path)
	default:
		logging.Warn(logger, "unknown store backend, using filesystem",
			slog.String("backend", cfg.Backend))
		return store.NewFSStore(cfg.Path)
	}
}
