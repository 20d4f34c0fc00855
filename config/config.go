package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	StoreDriver       string `mapstructure:"STORE_DRIVER"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Store calls are bounded by this timeout.
	StoreTimeout time.Duration `mapstructure:"STORE_TIMEOUT"`

	// Directory search paging.
	DefaultPageSize int `mapstructure:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `mapstructure:"MAX_PAGE_SIZE"`

	// Rating aggregation and reconciliation.
	RatingCreateStrategy string `mapstructure:"RATING_CREATE_STRATEGY"`
	ReconcileSchedule    string `mapstructure:"RECONCILE_SCHEDULE"`
	ReconcileBatchSize   int    `mapstructure:"RECONCILE_BATCH_SIZE"`
	RecomputeMaxRetry    int    `mapstructure:"RECOMPUTE_MAX_RETRY"`
	WorkerConcurrency    int    `mapstructure:"WORKER_CONCURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "lexconnect")
	viper.SetDefault("STORE_DRIVER", "mongo")
	viper.SetDefault("STORE_TIMEOUT", "5s")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("RATING_CREATE_STRATEGY", "full")
	viper.SetDefault("RECONCILE_SCHEDULE", "@every 15m")
	viper.SetDefault("RECONCILE_BATCH_SIZE", 200)
	viper.SetDefault("RECOMPUTE_MAX_RETRY", 8)
	viper.SetDefault("WORKER_CONCURRENCY", 5)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// StoreTimeout returns the per-call store deadline, never zero.
func StoreTimeout() time.Duration {
	if AppConfig.StoreTimeout <= 0 {
		return 5 * time.Second
	}
	return AppConfig.StoreTimeout
}
