// Package storage keeps uploaded file contents in a blob store addressed by
// key. Metadata lives in the files repository.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlobStore stores opaque byte blobs. Get reports common.ErrorNotFound for
// unknown keys; Delete of an unknown key is not an error.
type BlobStore interface {
	Put(ctx context.Context, key string, content []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh date-partitioned storage key.
func NewKey() string {
	d := time.Now()
	return fmt.Sprintf("files/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
