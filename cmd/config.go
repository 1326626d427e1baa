package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/errs"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	LogLevel      slog.Level
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SweepSchedule     string
	PreparingDuration time.Duration
	DeliveryDuration  time.Duration

	RedisAddr    string
	RedisChannel string

	RateLimitRPS    float64
	ShutdownTimeout time.Duration
}

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv
// after the .env file has been loaded. Unset variables take their defaults;
// every malformed variable is reported.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	lookup := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:      lookup("PORT", lookup("HTTP_PORT", "3000")),
		StorageDriver: lookup("STORAGE_DRIVER", StorageMemory),
		DBHost:        getenv("DB_HOST"),
		DBPort:        lookup("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER"),
		DBPassword:    getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME"),
		DBSslMode:     lookup("DB_SSLMODE", "disable"),
		SweepSchedule: lookup("SWEEP_SCHEDULE", jobs.DefaultSweepSchedule),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisChannel:  lookup("REDIS_CHANNEL", events.DefaultRedisChannel),
	}

	var problems []error

	if err := cfg.LogLevel.UnmarshalText([]byte(lookup("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"PREPARING_DURATION", services.DefaultPreparingDuration, &cfg.PreparingDuration},
		{"DELIVERY_DURATION", services.DefaultDeliveryDuration, &cfg.DeliveryDuration},
		{"SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		*d.dst = d.fallback
		raw := getenv(d.key)
		if raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(d.key, err))
			continue
		}
		if parsed <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(d.key, parsed, "0s", "-"))
			continue
		}
		*d.dst = parsed
	}

	if raw := getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("RATE_LIMIT_RPS", err))
		case rps < 0:
			problems = append(problems, errs.NewValueIsOutOfRangeError("RATE_LIMIT_RPS", rps, 0, "-"))
		default:
			cfg.RateLimitRPS = rps
		}
	}

	if port, err := strconv.Atoi(cfg.HTTPPort); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("PORT", cfg.HTTPPort, 1, 65535))
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		for key, value := range map[string]string{"DB_HOST": cfg.DBHost, "DB_USER": cfg.DBUser, "DB_NAME": cfg.DBName} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(key))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER",
			fmt.Errorf("%q must be %q or %q", cfg.StorageDriver, StorageMemory, StoragePostgres),
		))
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.HTTPPort
}
