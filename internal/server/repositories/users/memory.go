package users

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

// MemoryRepository keeps users in a map. It follows the same contract as
// PostgresRepository, including the unique email constraint.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int]models.User)}
}

func (r *MemoryRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return user, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		result = append(result, &u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email && u.Password == password })
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *MemoryRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}
