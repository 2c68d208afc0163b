package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
)

type VacancyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	files       *FileService
	now         func() time.Time
}

func NewVacancyService(db *sql.DB, m repomanager.RepositoryManager, files *FileService) *VacancyService {
	return &VacancyService{
		db:          db,
		repomanager: m,
		files:       files,
		now:         time.Now,
	}
}

// Create stores the photo and the vacancy in one transaction.
func (s *VacancyService) Create(ctx context.Context, vacancy *models.Vacancy, photo models.FileDto) (*models.Vacancy, error) {
	v := *vacancy
	if v.CreationDate.IsZero() {
		v.CreationDate = s.now()
	}

	var (
		saved *models.Vacancy
		file  *models.File
	)

	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var err error

		file, err = s.files.save(ctx, s.repomanager.Files(tx), photo)
		if err != nil {
			return err
		}

		v.FileID = file.ID
		saved, err = s.repomanager.Vacancies(tx).Save(ctx, &v)
		if err != nil {
			return fmt.Errorf("error saving vacancy: %w", err)
		}
		return nil
	})
	if err != nil {
		if file != nil {
			_ = s.files.blobs.Delete(ctx, file.Path)
		}
		return nil, err
	}

	return saved, nil
}

// Update overwrites the vacancy. A non-empty photo replaces the current one,
// which is deleted once the update is committed. It returns false when no
// vacancy has that id.
func (s *VacancyService) Update(ctx context.Context, vacancy *models.Vacancy, photo *models.FileDto) (bool, error) {
	v := *vacancy

	var (
		updated bool
		newFile *models.File
		oldPath string
	)

	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Vacancies(tx)
		filesRepo := s.repomanager.Files(tx)

		current, err := repo.FindByID(ctx, v.ID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
		v.FileID = current.FileID

		if photo != nil && len(photo.Content) > 0 {
			newFile, err = s.files.save(ctx, filesRepo, *photo)
			if err != nil {
				return err
			}
			v.FileID = newFile.ID
		}

		updated, err = repo.Update(ctx, &v)
		if err != nil {
			return fmt.Errorf("error updating vacancy: %w", err)
		}
		if !updated || newFile == nil {
			return nil
		}

		oldPath, _, err = s.files.deleteRow(ctx, filesRepo, current.FileID)
		return err
	})
	if err != nil {
		if newFile != nil {
			_ = s.files.blobs.Delete(ctx, newFile.Path)
		}
		return false, err
	}

	if oldPath != "" {
		// best effort, the row is already gone
		_ = s.files.blobs.Delete(ctx, oldPath)
	}
	return updated, nil
}

func (s *VacancyService) FindByID(ctx context.Context, id int) (*models.Vacancy, error) {
	return s.repomanager.Vacancies(s.db).FindByID(ctx, id)
}

func (s *VacancyService) FindAll(ctx context.Context) ([]*models.Vacancy, error) {
	return s.repomanager.Vacancies(s.db).FindAll(ctx)
}

// DeleteByID removes the vacancy and its photo.
func (s *VacancyService) DeleteByID(ctx context.Context, id int) (bool, error) {
	var (
		deleted bool
		photo   string
	)

	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Vacancies(tx)

		v, err := repo.FindByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}

		deleted, err = repo.DeleteByID(ctx, id)
		if err != nil || !deleted {
			return err
		}

		photo, _, err = s.files.deleteRow(ctx, s.repomanager.Files(tx), v.FileID)
		return err
	})
	if err != nil {
		return false, err
	}

	if photo != "" {
		_ = s.files.blobs.Delete(ctx, photo)
	}
	return deleted, nil
}
