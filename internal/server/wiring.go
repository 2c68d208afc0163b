package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/auth"
	"github.com/dmitrijs2005/dreamjob/internal/server/config"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dreamjob/internal/server/session"
	"github.com/dmitrijs2005/dreamjob/internal/server/storage"
	"github.com/redis/go-redis/v9"
)

// openPostgres is a seam for tests.
var openPostgres = dbx.OpenPostgres

// OpenDatabase connects to PostgreSQL, or returns a nil *sql.DB with the
// in-memory repositories when no datasource is configured.
func OpenDatabase(ctx context.Context, c *config.Config) (*sql.DB, repomanager.RepositoryManager, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, nil, err
	}
	if dsn == "" {
		return nil, repomanager.NewInMemoryRepositoryManager(), nil
	}

	db, err := openPostgres(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	return db, repomanager.NewPostgresRepositoryManager(), nil
}

// NewBlobStore builds the configured file content store.
func NewBlobStore(ctx context.Context, c *config.Config) (storage.BlobStore, error) {
	switch c.StorageBackend {
	case config.StorageDisk:
		return storage.NewDiskStore(c.StorageDir)
	case config.StorageS3:
		return storage.NewS3Store(ctx, storage.S3Options{
			AccessKey: c.S3RootUser,
			SecretKey: c.S3RootPassword,
			Region:    c.S3Region,
			Endpoint:  c.S3BaseEndpoint,
			Bucket:    c.S3Bucket,
		})
	case config.StorageMinio:
		return storage.NewMinioStore(ctx, storage.MinioOptions{
			Endpoint:  c.S3BaseEndpoint,
			AccessKey: c.S3RootUser,
			SecretKey: c.S3RootPassword,
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			UseSSL:    c.S3UseSSL,
		})
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

// NewSessionStore builds the configured session store. The returned close
// function releases its connections.
func NewSessionStore(ctx context.Context, c *config.Config) (session.Store, func() error, error) {
	switch c.SessionStore {
	case config.SessionMemory:
		return session.NewMemoryStore(c.SessionTTL), func() error { return nil }, nil
	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisStore(client, c.SessionTTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", c.SessionStore)
	}
}

// NewPasswordHasher returns nil when hashing is switched off.
func NewPasswordHasher(c *config.Config) auth.PasswordHasher {
	if !c.PasswordHashing {
		return nil
	}
	return auth.NewBcryptHasher()
}
