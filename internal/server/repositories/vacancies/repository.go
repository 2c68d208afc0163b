// Package vacancies persists job vacancies.
package vacancies

import (
	"context"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type Repository interface {
	Save(ctx context.Context, v *models.Vacancy) (*models.Vacancy, error)
	Update(ctx context.Context, v *models.Vacancy) (bool, error)
	FindByID(ctx context.Context, id int) (*models.Vacancy, error)
	FindAll(ctx context.Context) ([]*models.Vacancy, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
