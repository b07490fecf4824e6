package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server configuration read from the environment
type Config struct {
	MongoURI string
	MongoDB  string
	RedisURI string
	Port     string

	JWTSecret string `json:"-"`
	JWTTTL    time.Duration

	CORSAllowedOrigins string
	LogLevel           string

	ReportCacheTTL time.Duration
}

// Load reads the configuration, falling back to local development defaults
func Load() *Config {
	return &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "healthquiz"),
		RedisURI:           getEnv("REDIS_URI", "localhost:6379"),
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		JWTTTL:             time.Duration(getEnvInt("JWT_TTL_HOURS", 24*7)) * time.Hour,
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ReportCacheTTL:     time.Duration(getEnvInt("REPORT_CACHE_TTL_MINUTES", 60)) * time.Minute,
	}
}

// RedisAddr returns the Redis address without a redis:// scheme
func (c *Config) RedisAddr() string {
	return strings.TrimPrefix(c.RedisURI, "redis://")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
