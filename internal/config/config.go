package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string
	AppEnv      string

	// JWT session tokens
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// Store persistence: file, sqlite, postgres or redis
	StorageDriver    string
	StorageNamespace string
	DataDir          string
	SQLitePath       string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// Demo login
	LoginDelay   time.Duration
	DemoPassword string

	SentryDSN string
}

// Load reads the environment. A .env file in the working directory is loaded
// first when present; real environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		AppEnv:      getEnv("APP_ENV", "development"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "12h"), 12*time.Hour),

		StorageDriver:    getEnv("STORAGE_DRIVER", "file"),
		StorageNamespace: getEnv("STORAGE_NAMESPACE", "user-storage"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		SQLitePath:       getEnv("SQLITE_PATH", "helpdesk.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "helpdesk"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "helpdesk:"),

		LoginDelay:   parseDuration(getEnv("LOGIN_DELAY", "1s"), time.Second),
		DemoPassword: getEnv("DEMO_PASSWORD", "password123"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// UsesDatabase reports whether the storage driver needs a gorm connection.
func (c *Config) UsesDatabase() bool {
	return c.StorageDriver == "sqlite" || c.StorageDriver == "postgres"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
