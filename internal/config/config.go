package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int
	LogLevel        string

	// RedisAddress is empty when the exchange rate cache is disabled.
	RedisAddress  string
	RedisPassword string
	RateCacheTTL  time.Duration
}

// ProcessEnvironmentVariables builds the config from the environment, after loading a
// .env file from the working directory if one exists.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  4,
		LogLevel:         "info",
		RateCacheTTL:     10 * time.Minute,
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.RedisAddress, "REDIS_ADDRESS")
	setString(&env.RedisPassword, "REDIS_PASSWORD")

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("RATE_CACHE_TTL"); len(v) != 0 {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("RATE_CACHE_TTL: %w", err)
		}
		env.RateCacheTTL = ttl
	}

	return &env, nil
}

// PostgresConnectionString returns the lib/pq DSN for the configured database.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword + "@" +
		c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(field *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*field = v
	}
}
