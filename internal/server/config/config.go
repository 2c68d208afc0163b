// Package config handles configuration for the DreamJob server. Values are
// layered: defaults, JSON file, properties file, environment, flags.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Storage back-ends for uploaded files.
const (
	StorageDisk   = "disk"
	StorageS3     = "s3"
	StorageMinio  = "minio"
	StorageMemory = "memory"
)

// Session store back-ends.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// Config holds runtime settings for the DreamJob server.
//
// An empty DatasourceURL selects the in-memory repositories. DatasourceUsername
// and DatasourcePassword, when set, are injected into the URL unless it
// already carries credentials.
type Config struct {
	HTTPAddr string `validate:"required"`

	DatasourceURL      string
	DatasourceUsername string
	DatasourcePassword string

	SecretKey    string        `validate:"required"`
	SessionTTL   time.Duration `validate:"min=1s"`
	SessionStore string        `validate:"oneof=memory redis"`

	RedisAddr     string `validate:"required_if=SessionStore redis"`
	RedisPassword string
	RedisDB       int `validate:"min=0"`

	StorageBackend string `validate:"oneof=disk s3 minio memory"`
	StorageDir     string `validate:"required_if=StorageBackend disk"`
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string `validate:"required_if=StorageBackend minio"`
	S3UseSSL       bool

	PasswordHashing bool
	LogFormat       string `validate:"oneof=json text zerolog"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatasourceURL = ""
	c.SecretKey = "secretKey"
	c.SessionTTL = 30 * time.Minute
	c.SessionStore = SessionMemory
	c.RedisAddr = "127.0.0.1:6379"
	c.StorageBackend = StorageDisk
	c.StorageDir = "files"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "dreamjob"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PasswordHashing = true
	c.LogFormat = "json"
}

// Validate checks value ranges and cross-field requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if (c.StorageBackend == StorageS3 || c.StorageBackend == StorageMinio) && c.S3Bucket == "" {
		return fmt.Errorf("invalid config: bucket is required for %s storage", c.StorageBackend)
	}
	return nil
}

// DSN returns the connection string for pgx, or "" when no datasource is
// configured. JDBC-style URLs ("jdbc:postgresql://...") are accepted.
func (c *Config) DSN() (string, error) {
	if c.DatasourceURL == "" {
		return "", nil
	}

	u, err := url.Parse(strings.TrimPrefix(c.DatasourceURL, "jdbc:"))
	if err != nil {
		return "", fmt.Errorf("datasource url: %w", err)
	}
	if u.User == nil && c.DatasourceUsername != "" {
		if c.DatasourcePassword != "" {
			u.User = url.UserPassword(c.DatasourceUsername, c.DatasourcePassword)
		} else {
			u.User = url.User(c.DatasourceUsername)
		}
	}
	return u.String(), nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, an optional properties file, the environment
// and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseProperties(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
