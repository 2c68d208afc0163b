// Package files persists metadata of uploaded blobs.
package files

import (
	"context"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type Repository interface {
	Save(ctx context.Context, file *models.File) (*models.File, error)
	FindByID(ctx context.Context, id int) (*models.File, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}
