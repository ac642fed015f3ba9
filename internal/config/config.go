package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultLogLevel       = "info"
	defaultConnectTimeout = 10 * time.Second
)

// Config holds all server configuration
type Config struct {
	LogLevel  string
	Couchbase CouchbaseConfig
}

// CouchbaseConfig holds the cluster connection settings
type CouchbaseConfig struct {
	ConnectionString string        `env:"COUCHBASE_CONNECTION_STRING" validate:"required"`
	Username         string        `env:"COUCHBASE_USERNAME" validate:"required"`
	Password         string        `env:"COUCHBASE_PASSWORD" validate:"required"`
	ConnectTimeout   time.Duration `env:"COUCHBASE_CONNECT_TIMEOUT" validate:"gt=0"`
}

// MissingEnvError is returned by Validate when required variables are unset
type MissingEnvError struct {
	Vars []string
}

// Error returns a string representation of the error
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing Couchbase connection environment variables: %s", strings.Join(e.Vars, ", "))
}

// LoadEnvFile loads variables from a dotenv file. Variables already present
// in the environment are left alone and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
		Couchbase: CouchbaseConfig{
			ConnectionString: os.Getenv("COUCHBASE_CONNECTION_STRING"),
			Username:         os.Getenv("COUCHBASE_USERNAME"),
			Password:         os.Getenv("COUCHBASE_PASSWORD"),
			ConnectTimeout:   getDuration("COUCHBASE_CONNECT_TIMEOUT", defaultConnectTimeout),
		},
	}
}

// Validate checks that every required value is present
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	missing := &MissingEnvError{}
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			missing.Vars = append(missing.Vars, fe.Field())
		default:
			return fmt.Errorf("%s must be a positive duration", fe.Field())
		}
	}
	return missing
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration parses a duration variable. Unparseable values yield zero so
// that Validate reports them.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
