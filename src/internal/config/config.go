package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultPort = 7000
const defaultEnv = "development"
const defaultLogLevel = "info"
const defaultTransferTimeout = 3 * time.Second
const defaultBackoffBase = 100 * time.Microsecond
const defaultBackoffJitter = time.Millisecond
const defaultShutdownTimeout = 15 * time.Second
const defaultTransferTopic = "bankwire.transfers"

type Config struct {
	Port            int
	Env             string
	LogLevel        string
	ShutdownTimeout time.Duration

	Transfer TransferConfig
	Kafka    KafkaConfig
}

// TransferConfig bounds a single transfer attempt: the whole retry loop ends
// after Timeout, and each failed try-lock sleeps BackoffBase plus a random
// amount below BackoffJitter.
type TransferConfig struct {
	Timeout       time.Duration
	BackoffBase   time.Duration
	BackoffJitter time.Duration
}

type KafkaConfig struct {
	Brokers       []string
	TransferTopic string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:            getEnvAsInt("PORT", defaultPort),
		Env:             getEnvOrDefault("APP_ENV", defaultEnv),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		Transfer: TransferConfig{
			Timeout:       getEnvAsDuration("TRANSFER_TIMEOUT", defaultTransferTimeout),
			BackoffBase:   getEnvAsDuration("TRANSFER_BACKOFF_BASE", defaultBackoffBase),
			BackoffJitter: getEnvAsDuration("TRANSFER_BACKOFF_JITTER", defaultBackoffJitter),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(os.Getenv("KAFKA_BROKERS")),
			TransferTopic: getEnvOrDefault("KAFKA_TRANSFER_TOPIC", defaultTransferTopic),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []string

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, "PORT must be between 1 and 65535")
	}
	if c.Transfer.Timeout <= 0 {
		errs = append(errs, "TRANSFER_TIMEOUT must be positive")
	}
	if c.Transfer.BackoffBase < 0 || c.Transfer.BackoffJitter < 0 {
		errs = append(errs, "transfer backoff durations cannot be negative")
	}
	if c.Kafka.Enabled() && strings.TrimSpace(c.Kafka.TransferTopic) == "" {
		errs = append(errs, "KAFKA_TRANSFER_TOPIC is required when KAFKA_BROKERS is set")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
