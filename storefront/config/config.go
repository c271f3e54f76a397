package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tair/wastesmart-storefront/pkg/database"
)

// Session store backends
const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// DefaultSessionSecret is only accepted in development
const DefaultSessionSecret = "change-me-in-production"

var ErrDefaultSecret = errors.New("SESSION_SECRET must be set outside development")

// BackendConfig says where the WasteSmart API lives
type BackendConfig struct {
	BaseURLs []string
	Timeout  time.Duration
}

// SessionConfig selects where identity records are kept and how long they live
type SessionConfig struct {
	Store  string
	TTL    time.Duration
	Secret string
	// Carts untouched this long are dropped
	CartIdle time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// CatalogConfig controls the Redis read-through cache over catalog calls
type CatalogConfig struct {
	// Zero disables the cache
	CacheTTL time.Duration
}

// RateLimitConfig caps sign-in attempts per client
type RateLimitConfig struct {
	AuthRequests int
	Window       time.Duration
	// Peers whose X-Forwarded-For is believed, as IPs or CIDRs
	TrustedProxies []string
}

// StorefrontConfig holds the main storefront configuration
type StorefrontConfig struct {
	Port           string
	ServiceName    string
	Environment    string
	LogLevel       string
	JaegerEndpoint string
	AllowedOrigins []string

	Backend   BackendConfig
	Session   SessionConfig
	Redis     RedisConfig
	Database  database.Config
	Kafka     KafkaConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

// LoadConfig loads the storefront configuration from the environment
func LoadConfig() *StorefrontConfig {
	return &StorefrontConfig{
		Port:           getEnv("STOREFRONT_PORT", "3000"),
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "wastesmart-storefront"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", "*"),
		Backend: BackendConfig{
			BaseURLs: getList("BACKEND_URLS", "http://localhost:8000"),
			Timeout:  getDuration("BACKEND_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			Store:    strings.ToLower(getEnv("SESSION_STORE", StoreRedis)),
			TTL:      getDuration("SESSION_TTL", 24*time.Hour),
			Secret:   getEnv("SESSION_SECRET", DefaultSessionSecret),
			CartIdle: getDuration("CART_IDLE_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefrontdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS", ""),
			Topic:   getEnv("KAFKA_CHECKOUT_TOPIC", "storefront-checkout"),
		},
		Catalog: CatalogConfig{
			CacheTTL: getOptionalDuration("CATALOG_CACHE_TTL", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			AuthRequests:   getInt("RATE_LIMIT_AUTH", 10),
			Window:         time.Minute,
			TrustedProxies: getList("TRUSTED_PROXIES", ""),
		},
	}
}

// Validate rejects settings that are unsafe to run with
func (c *StorefrontConfig) Validate() error {
	if !c.IsDevelopment() && c.Session.Secret == DefaultSessionSecret {
		return ErrDefaultSecret
	}
	return nil
}

// IsDevelopment enables console logging and an insecure session cookie
func (c *StorefrontConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

// getOptionalDuration is getDuration that also accepts zero
func getOptionalDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d >= 0 {
		return d
	}
	return defaultValue
}

// getList splits a comma separated value, dropping empty items
func getList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
