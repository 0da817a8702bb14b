package config

const (
	envStoreBackend  = "STORE_BACKEND"
	envStorePath     = "STORE_PATH"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"

	// Store backends.
	StoreMemory = "memory"
	StoreFS     = "fs"
	StoreRedis  = "redis"

	defaultStoreBackend = StoreFS
	defaultStorePath    = "data/results"
)

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend       string
	Path          string // fs backend root
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func loadStore() StoreConfig {
	return StoreConfig{
		Backend:       envOrDefault(envStoreBackend, defaultStoreBackend),
		Path:          envOrDefault(envStorePath, defaultStorePath),
		RedisAddr:     envOrDefault(envRedisAddr, "localhost:6379"),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
	}
}
