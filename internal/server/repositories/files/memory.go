package files

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	files  map[int]models.File
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{files: make(map[int]models.File)}
}

func (r *MemoryRepository) Save(ctx context.Context, file *models.File) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.files {
		if f.Path == file.Path {
			return nil, common.ErrorAlreadyExists
		}
	}
	r.nextID++
	file.ID = r.nextID
	r.files[file.ID] = *file
	return file, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[id]; !ok {
		return false, nil
	}
	delete(r.files, id)
	return true, nil
}
