package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env          string
	HTTPAddr     string
	StoreMode    string
	MongoURI     string
	MongoDB      string
	KafkaBrokers []string
	KafkaTopic   string
	AdminToken   string
}

// Load parses configuration from the current environment. The memory store
// needs nothing; Mongo settings are only required when STORE_MODE=mongo,
// and Kafka publishing is enabled only when KAFKA_BROKERS is set.
func Load() (Config, error) {
	cfg := Config{
		Env:        getEnv("APP_ENV", "dev"),
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		StoreMode:  strings.ToLower(getEnv("STORE_MODE", StoreMemory)),
		MongoURI:   os.Getenv("MONGO_URI"),
		MongoDB:    getEnv("MONGO_DB", "stayhub"),
		KafkaTopic: getEnv("KAFKA_TOPIC", "stayhub.bookings"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, raw := range strings.Split(brokers, ",") {
			if b := strings.TrimSpace(raw); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StoreMode {
	case StoreMemory:
	case StoreMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORE_MODE=%s", StoreMongo)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_MODE %q", cfg.StoreMode)
	}

	return cfg, nil
}

// EventsEnabled reports whether booking events should be published.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
