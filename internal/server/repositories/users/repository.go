// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

// Repository stores users. Absent results are reported with
// common.ErrorNotFound and duplicate emails with common.ErrorAlreadyExists.
type Repository interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
