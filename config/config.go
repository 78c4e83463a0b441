package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Store     StoreConfig
	Auth      AuthConfig
	Gateway   GatewayConfig
	Synthesis SynthesisConfig
	Cron      CronConfig
	App       AppConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type DatabaseConfig struct {
	// Driver is the database/sql driver name: "postgres" (lib/pq) or "pgx".
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StoreConfig selects the record store backend: memory, redis or postgres.
type StoreConfig struct {
	Backend string
}

type AuthConfig struct {
	Mode         string // accounts | firebase
	AccountsFile string
	SessionTTL   time.Duration
	Firebase     FirebaseConfig
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
	// EmulatorHost points the SDK at a local auth emulator; no credentials
	// are needed then.
	EmulatorHost string
}

type GatewayConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  float64
	Burst      int
	GoogleAuth bool
}

type SynthesisConfig struct {
	Timeout time.Duration
}

type CronConfig struct {
	MetricsSpec string
}

type AppConfig struct {
	ServiceName string
	Environment string
	LogLevel    string
	Version     string
}

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	AuthAccounts = "accounts"
	AuthFirebase = "firebase"
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "zerobuild"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		},
		Auth: AuthConfig{
			Mode:         strings.ToLower(getEnv("AUTH_MODE", AuthAccounts)),
			AccountsFile: getEnv("ACCOUNTS_FILE", "accounts.yaml"),
			SessionTTL:   getEnvAsDuration("SESSION_TTL", 12*time.Hour),
			Firebase: FirebaseConfig{
				CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
				ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
				EmulatorHost:    getEnv("FIREBASE_AUTH_EMULATOR_HOST", ""),
			},
		},
		Gateway: GatewayConfig{
			BaseURL:    getEnv("GATEWAY_BASE_URL", "http://localhost:8090"),
			Timeout:    getEnvAsDuration("GATEWAY_TIMEOUT", 90*time.Second),
			RateLimit:  getEnvAsFloat("GATEWAY_RATE_LIMIT", 8),
			Burst:      getEnvAsInt("GATEWAY_BURST", 16),
			GoogleAuth: getEnvAsBool("GATEWAY_GOOGLE_AUTH", false),
		},
		Synthesis: SynthesisConfig{
			Timeout: getEnvAsDuration("SYNTHESIS_TIMEOUT", 3*time.Minute),
		},
		Cron: CronConfig{
			MetricsSpec: getEnv("METRICS_CRON", "0 */5 * * * *"),
		},
		App: AppConfig{
			ServiceName: getEnv("SERVICE_NAME", "zerobuild-backend"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
	case StorePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres store")
		}
		if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
			return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	switch c.Auth.Mode {
	case AuthAccounts:
		if c.Auth.AccountsFile == "" {
			return fmt.Errorf("ACCOUNTS_FILE is required")
		}
		if c.Auth.SessionTTL <= 0 {
			return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Auth.SessionTTL)
		}
	case AuthFirebase:
		fb := c.Auth.Firebase
		if fb.EmulatorHost != "" {
			if fb.ProjectID == "" {
				return fmt.Errorf("FIREBASE_PROJECT_ID is required with FIREBASE_AUTH_EMULATOR_HOST")
			}
		} else if fb.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}

	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("GATEWAY_BASE_URL is required")
	}

	return nil
}

// UsesRedis reports whether any component needs a redis connection.
func (c *Config) UsesRedis() bool {
	return c.Store.Backend == StoreRedis
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
