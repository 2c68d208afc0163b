package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/flagx"
	"github.com/joho/godotenv"
)

type setter func(c *Config, v string) error

func str(field func(c *Config) *string) setter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

func boolean(field func(c *Config) *bool) setter {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// properties maps dotted property keys to Config fields. The same keys are
// read from the environment upper-cased with dots replaced by underscores
// (datasource.url -> DATASOURCE_URL).
var properties = map[string]setter{
	"server.address":      str(func(c *Config) *string { return &c.HTTPAddr }),
	"datasource.url":      str(func(c *Config) *string { return &c.DatasourceURL }),
	"datasource.username": str(func(c *Config) *string { return &c.DatasourceUsername }),
	"datasource.password": str(func(c *Config) *string { return &c.DatasourcePassword }),
	"secret.key":          str(func(c *Config) *string { return &c.SecretKey }),
	"session.ttl": func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.SessionTTL = d
		return nil
	},
	"session.store":  str(func(c *Config) *string { return &c.SessionStore }),
	"redis.addr":     str(func(c *Config) *string { return &c.RedisAddr }),
	"redis.password": str(func(c *Config) *string { return &c.RedisPassword }),
	"redis.db": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.RedisDB = n
		return nil
	},
	"storage.backend":  str(func(c *Config) *string { return &c.StorageBackend }),
	"storage.dir":      str(func(c *Config) *string { return &c.StorageDir }),
	"s3.user":          str(func(c *Config) *string { return &c.S3RootUser }),
	"s3.password":      str(func(c *Config) *string { return &c.S3RootPassword }),
	"s3.bucket":        str(func(c *Config) *string { return &c.S3Bucket }),
	"s3.region":        str(func(c *Config) *string { return &c.S3Region }),
	"s3.endpoint":      str(func(c *Config) *string { return &c.S3BaseEndpoint }),
	"s3.ssl":           boolean(func(c *Config) *bool { return &c.S3UseSSL }),
	"password.hashing": boolean(func(c *Config) *bool { return &c.PasswordHashing }),
	"log.format":       str(func(c *Config) *string { return &c.LogFormat }),
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func applyProperty(c *Config, key, value string) error {
	set, ok := properties[key]
	if !ok {
		return nil
	}
	if err := set(c, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// parseProperties overlays values from the key=value file named by
// -properties (e.g. connection.properties). Unknown keys are ignored;
// unreadable files or bad values panic.
func parseProperties(config *Config) {
	path := flagx.PropertiesFlags()
	if path == "" {
		return
	}

	values, err := godotenv.Read(path)
	if err != nil {
		panic(err)
	}

	for k, v := range values {
		if err := applyProperty(config, k, v); err != nil {
			panic(err)
		}
	}
}

// parseEnv overlays values from environment variables.
func parseEnv(config *Config) {
	for key := range properties {
		v, ok := os.LookupEnv(envName(key))
		if !ok {
			continue
		}
		if err := applyProperty(config, key, v); err != nil {
			panic(err)
		}
	}
}
