package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/filex"
)

// DiskStore keeps blobs as files under a root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	root, err := filex.EnsureSubDir(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Put(ctx context.Context, key string, content []byte) error {
	p, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o770); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(p, content, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	p, err := filex.SafeJoin(s.root, key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
