package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	MetricsPort  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Redis configuration (read model)
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka configuration
	KafkaBrokers           []string
	KafkaClientID          string
	KafkaTopic             string
	KafkaConsumerGroup     string
	KafkaDeadLetterTopic   string
	KafkaMaxRetries        int
	KafkaRetryDelay        time.Duration
	KafkaTopicPartitions   int32
	KafkaReplicationFactor int16

	// Outbox dispatcher configuration
	OutboxBatchSize    int
	OutboxRetryDelay   time.Duration
	OutboxMaxAttempts  int
	OutboxPollInterval time.Duration

	// Read-model resynchronization; zero runs once and exits
	ResyncInterval time.Duration

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		MetricsPort:            getEnv("METRICS_PORT", "9091"),
		ReadTimeout:            getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:           getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:            getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnvInt("DB_PORT", 5432),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBName:                 getEnv("DB_NAME", "blog_articles"),
		DBSSLMode:              getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:             int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:             int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:      getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:      getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:    getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		RedisURL:               getEnv("REDIS_URL", ""),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		RedisDB:                getEnvInt("REDIS_DB", 0),
		KafkaBrokers:           getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaClientID:          getEnv("KAFKA_CLIENT_ID", "blog-article-service"),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "article-events"),
		KafkaConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "article-read-model"),
		KafkaDeadLetterTopic:   getEnv("KAFKA_DEAD_LETTER_TOPIC", "article-events-dead-letter"),
		KafkaMaxRetries:        getEnvInt("KAFKA_MAX_RETRIES", 3),
		KafkaRetryDelay:        getEnvDuration("KAFKA_RETRY_DELAY", 500*time.Millisecond),
		KafkaTopicPartitions:   int32(getEnvInt("KAFKA_TOPIC_PARTITIONS", 1)),
		KafkaReplicationFactor: int16(getEnvInt("KAFKA_REPLICATION_FACTOR", 1)),
		OutboxBatchSize:        getEnvInt("OUTBOX_BATCH_SIZE", 10),
		OutboxRetryDelay:       getEnvDuration("OUTBOX_RETRY_DELAY", 5*time.Second),
		OutboxMaxAttempts:      getEnvInt("OUTBOX_MAX_ATTEMPTS", 5),
		OutboxPollInterval:     getEnvDuration("OUTBOX_POLL_INTERVAL", 5*time.Second),
		ResyncInterval:         getEnvDuration("RESYNC_INTERVAL", 0),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.RedisURL == "" && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_URL or REDIS_ADDR is required")
	}
	if len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required")
	}
	if c.KafkaConsumerGroup == "" {
		return fmt.Errorf("KAFKA_CONSUMER_GROUP is required")
	}
	if c.KafkaMaxRetries < 1 {
		return fmt.Errorf("KAFKA_MAX_RETRIES must be at least 1")
	}
	if c.OutboxBatchSize < 1 {
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be at least 1")
	}
	if c.OutboxMaxAttempts < 1 {
		return fmt.Errorf("OUTBOX_MAX_ATTEMPTS must be at least 1")
	}
	if c.OutboxPollInterval <= 0 {
		return fmt.Errorf("OUTBOX_POLL_INTERVAL must be positive")
	}
	if c.ResyncInterval < 0 {
		return fmt.Errorf("RESYNC_INTERVAL must not be negative")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
