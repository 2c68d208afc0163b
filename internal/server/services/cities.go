package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
)

type CityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCityService(db *sql.DB, m repomanager.RepositoryManager) *CityService {
	return &CityService{db: db, repomanager: m}
}

func (s *CityService) FindAll(ctx context.Context) ([]*models.City, error) {
	return s.repomanager.Cities(s.db).FindAll(ctx)
}

func (s *CityService) FindByID(ctx context.Context, id int) (*models.City, error) {
	return s.repomanager.Cities(s.db).FindByID(ctx, id)
}
