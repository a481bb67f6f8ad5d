// Package config gathers the service settings from environment variables.
// A .env file, when present, is loaded by godotenv/autoload in cmd/api.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

var ErrUnknownStorageDriver = errors.New("unknown STORAGE_DRIVER")

// Config holds runtime settings for the storefront API.
type Config struct {
	Port string

	// StorageDriver is "dynamodb" (default) or "memory".
	StorageDriver        string
	CreateDynamoDBTables bool

	AdminEmail    string
	AdminName     string
	AdminPassword string

	JWTSecret   string
	JWTTokenTTL time.Duration
	BcryptCost  int

	SubscriptionPrice int64
	SeedCatalog       bool

	RedisURL         string
	DecisionSeqKey   string
	GeminiAPIKey     string
	GeminiModel      string
	NotifierTimeout  time.Duration
	PublicBaseURL    string
	MetricsNamespace string

	MercadoPagoAccessToken string
}

// Load reads the environment. Malformed numeric or duration values fall back
// to their defaults with a log line.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                   getenvDefault("PORT", "8080"),
		StorageDriver:          strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		CreateDynamoDBTables:   getenvBool("DYNAMODB_CREATE_TABLES", false),
		AdminEmail:             getenvDefault("ADMIN_EMAIL", "admin@guytogo.com"),
		AdminName:              getenvDefault("ADMIN_NAME", "Administrator"),
		AdminPassword:          os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTTokenTTL:            getenvDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:             getenvInt("BCRYPT_COST", 12),
		SubscriptionPrice:      int64(getenvInt("SUBSCRIPTION_PRICE", 12000)),
		SeedCatalog:            getenvBool("SEED_CATALOG", false),
		RedisURL:               os.Getenv("REDIS_URL"),
		DecisionSeqKey:         getenvDefault("DECISION_SEQ_KEY", "guytogo:decision_seq"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            os.Getenv("GEMINI_MODEL"),
		NotifierTimeout:        getenvDuration("NOTIFIER_TIMEOUT", 10*time.Second),
		PublicBaseURL:          getenvDefault("PUBLIC_BASE_URL", "https://guytogo.com"),
		MetricsNamespace:       getenvDefault("METRICS_NAMESPACE", "guytogo"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	if cfg.StorageDriver != StorageMemory && cfg.StorageDriver != StorageDynamoDB {
		return nil, ErrUnknownStorageDriver
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("missing JWT_SECRET")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("missing ADMIN_PASSWORD")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
