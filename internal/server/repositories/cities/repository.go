// Package cities reads the city dictionary.
package cities

import (
	"context"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type Repository interface {
	FindAll(ctx context.Context) ([]*models.City, error)
	FindByID(ctx context.Context, id int) (*models.City, error)
}
