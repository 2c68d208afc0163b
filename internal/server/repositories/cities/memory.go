package cities

import (
	"context"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

// DefaultCities mirrors the rows seeded by the cities migration.
var DefaultCities = []models.City{
	{ID: 1, Name: "Москва"},
	{ID: 2, Name: "Санкт-Петербург"},
	{ID: 3, Name: "Екатеринбург"},
}

// MemoryRepository serves a fixed, read-only list of cities.
type MemoryRepository struct {
	cities []models.City
}

func NewMemoryRepository(cities []models.City) *MemoryRepository {
	return &MemoryRepository{cities: append([]models.City(nil), cities...)}
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]*models.City, error) {
	result := make([]*models.City, 0, len(r.cities))
	for _, c := range r.cities {
		c := c
		result = append(result, &c)
	}
	return result, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*models.City, error) {
	for _, c := range r.cities {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}
