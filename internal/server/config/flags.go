package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/flagx"
)

var ownFlags = []string{
	"-a", "-d", "-du", "-dp", "-s", "-t",
	"-session-store", "-redis-addr", "-redis-password", "-redis-db",
	"-storage", "-storage-dir", "-u", "-p", "-b", "-g", "-e", "-s3-ssl",
	"-password-hashing", "-log-format",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string              HTTP bind address (e.g. ":8080")
//	-d string              datasource URL (postgres://host:5432/dreamjob)
//	-du / -dp string       datasource username / password
//	-s string              session signing key
//	-t int                 session lifetime, minutes
//	-session-store string  memory | redis
//	-redis-addr, -redis-password, -redis-db
//	-storage string        disk | s3 | minio
//	-storage-dir string    directory for the disk store
//	-u / -p string         S3 access key / secret
//	-b / -g / -e string    S3 bucket / region / endpoint
//	-s3-ssl bool           use TLS for MinIO
//	-password-hashing bool store bcrypt hashes instead of plain passwords
//	-log-format string     json | text | zerolog
//
// Unknown arguments are filtered out first with flagx.FilterArgs so other
// layers can share os.Args.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], ownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatasourceURL, "d", config.DatasourceURL, "datasource URL")
	fs.StringVar(&config.DatasourceUsername, "du", config.DatasourceUsername, "datasource username")
	fs.StringVar(&config.DatasourcePassword, "dp", config.DatasourcePassword, "datasource password")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session lifetime (in minutes)")

	fs.StringVar(&config.SessionStore, "session-store", config.SessionStore, "session store: memory or redis")
	fs.StringVar(&config.RedisAddr, "redis-addr", config.RedisAddr, "redis address")
	fs.StringVar(&config.RedisPassword, "redis-password", config.RedisPassword, "redis password")
	fs.IntVar(&config.RedisDB, "redis-db", config.RedisDB, "redis database number")

	fs.StringVar(&config.StorageBackend, "storage", config.StorageBackend, "file storage: disk, s3 or minio")
	fs.StringVar(&config.StorageDir, "storage-dir", config.StorageDir, "directory for disk storage")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&config.S3UseSSL, "s3-ssl", config.S3UseSSL, "use TLS for MinIO")

	fs.BoolVar(&config.PasswordHashing, "password-hashing", config.PasswordHashing, "hash passwords with bcrypt")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format: json, text or zerolog")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
