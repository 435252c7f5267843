package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Batch    BatchConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize       int
	MaxRetries     int
	RetryBaseDelay time.Duration
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type BatchConfig struct {
	MaxEntries          int
	DefaultCurrency     string
	CollaboratorTimeout time.Duration
}

type StoreConfig struct {
	// Driver selects the earnings store / agent directory backend:
	// "memory" or "postgres".
	Driver      string
	DatabaseURL string
	// SeedDemoAgents fills the memory directory with a few agents so the
	// service is usable without an upstream directory.
	SeedDemoAgents bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:       getIntEnv("WORKER_POOL_SIZE", 10),
			MaxRetries:     getIntEnv("MAX_RETRIES", 3),
			RetryBaseDelay: getDurationEnv("RETRY_BASE_DELAY", 100*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Batch: BatchConfig{
			MaxEntries:          getIntEnv("BATCH_MAX_ENTRIES", 1000),
			DefaultCurrency:     getEnv("DEFAULT_CURRENCY", "USD"),
			CollaboratorTimeout: getDurationEnv("COLLABORATOR_TIMEOUT", 5*time.Second),
		},
		Store: StoreConfig{
			Driver:         getEnv("STORE_DRIVER", "memory"),
			DatabaseURL:    getEnv("DATABASE_URL", ""),
			SeedDemoAgents: getEnv("SEED_DEMO_AGENTS", "false") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
