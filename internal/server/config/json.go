package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/dreamjob/internal/flagx"
	"github.com/dmitrijs2005/dreamjob/internal/timex"
)

// JsonConfig is the on-disk JSON shape. Absent keys leave the current
// value untouched, hence the pointers for non-string fields.
type JsonConfig struct {
	HTTPAddr           string          `json:"http_addr"`
	DatasourceURL      string          `json:"datasource_url"`
	DatasourceUsername string          `json:"datasource_username"`
	DatasourcePassword string          `json:"datasource_password"`
	SecretKey          string          `json:"secret_key"`
	SessionTTL         *timex.Duration `json:"session_ttl"`
	SessionStore       string          `json:"session_store"`
	RedisAddr          string          `json:"redis_addr"`
	RedisPassword      string          `json:"redis_password"`
	RedisDB            *int            `json:"redis_db"`
	StorageBackend     string          `json:"storage_backend"`
	StorageDir         string          `json:"storage_dir"`
	S3RootUser         string          `json:"s3_root_user"`
	S3RootPassword     string          `json:"s3_root_password"`
	S3Bucket           string          `json:"s3_bucket"`
	S3Region           string          `json:"s3_region"`
	S3BaseEndpoint     string          `json:"s3_base_endpoint"`
	S3UseSSL           *bool           `json:"s3_use_ssl"`
	PasswordHashing    *bool           `json:"password_hashing"`
	LogFormat          string          `json:"log_format"`
}

// parseJson overlays values from the file named by -c/-config. Without the
// flag nothing is loaded. Unreadable or malformed files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatasourceURL, c.DatasourceURL)
	setString(&config.DatasourceUsername, c.DatasourceUsername)
	setString(&config.DatasourcePassword, c.DatasourcePassword)
	setString(&config.SecretKey, c.SecretKey)
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	setString(&config.SessionStore, c.SessionStore)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.StorageDir, c.StorageDir)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.S3UseSSL != nil {
		config.S3UseSSL = *c.S3UseSSL
	}
	if c.PasswordHashing != nil {
		config.PasswordHashing = *c.PasswordHashing
	}
	setString(&config.LogFormat, c.LogFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
