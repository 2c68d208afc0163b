package vacancies

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int
	vacancies map[int]models.Vacancy
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{vacancies: make(map[int]models.Vacancy)}
}

func (r *MemoryRepository) Save(ctx context.Context, v *models.Vacancy) (*models.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.vacancies[v.ID] = *v
	return v, nil
}

func (r *MemoryRepository) Update(ctx context.Context, v *models.Vacancy) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.vacancies[v.ID]
	if !ok {
		return false, nil
	}
	updated := *v
	updated.CreationDate = old.CreationDate
	r.vacancies[v.ID] = updated
	return true, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*models.Vacancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vacancies[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &v, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]*models.Vacancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Vacancy, 0, len(r.vacancies))
	for _, v := range r.vacancies {
		v := v
		result = append(result, &v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vacancies[id]; !ok {
		return false, nil
	}
	delete(r.vacancies, id)
	return true, nil
}
