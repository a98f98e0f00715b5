package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceFixture = "fixture"
	DataSourceMongo   = "mongo"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DataSource string
	MongoURI   string
	MongoDB    string

	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AMQPURL         string
	InquiryExchange string

	PageSize        int
	ShutdownTimeout time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataSource: getEnv("DATA_SOURCE", DataSourceFixture),
		MongoURI:   getEnv("MONGO_URI", ""),
		MongoDB:    getEnv("MONGO_DB", "industrialCatalog"),

		CacheBackend:  getEnv("CACHE_BACKEND", CacheMemory),
		CacheTTL:      getDuration("CACHE_TTL", 2*time.Minute),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		AMQPURL:         getEnv("AMQP_URL", ""),
		InquiryExchange: getEnv("INQUIRY_EXCHANGE", "site_inquiries"),

		PageSize:        getInt("PAGE_SIZE", 9),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Validate rechaza combinaciones que no pueden arrancar
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceFixture:
	case DataSourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when DATA_SOURCE=%s", DataSourceMongo)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}

	switch c.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getDuration acepta "90s", "2m" o un número entero de segundos
func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}
