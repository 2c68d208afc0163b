package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/files"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dreamjob/internal/server/storage"
)

// FileService stores file contents in a blob store and their metadata in
// the files repository.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
	}
}

var newStorageKey = storage.NewKey

func (s *FileService) Save(ctx context.Context, dto models.FileDto) (*models.File, error) {
	return s.save(ctx, s.repomanager.Files(s.db), dto)
}

// save writes the blob first and the row second. The blob is removed again
// when the row cannot be written.
func (s *FileService) save(ctx context.Context, repo files.Repository, dto models.FileDto) (*models.File, error) {
	key := newStorageKey()

	if err := s.blobs.Put(ctx, key, dto.Content); err != nil {
		return nil, fmt.Errorf("error storing file content: %w", err)
	}

	file, err := repo.Save(ctx, &models.File{Name: dto.Name, Path: key})
	if err != nil {
		_ = s.blobs.Delete(ctx, key)
		return nil, fmt.Errorf("error saving file: %w", err)
	}
	return file, nil
}

// GetFileByID returns the file name and content, or common.ErrorNotFound.
func (s *FileService) GetFileByID(ctx context.Context, id int) (*models.FileDto, error) {
	file, err := s.repomanager.Files(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.blobs.Get(ctx, file.Path)
	if err != nil {
		return nil, err
	}
	return &models.FileDto{Name: file.Name, Content: content}, nil
}

func (s *FileService) DeleteByID(ctx context.Context, id int) (bool, error) {
	path, ok, err := s.deleteRow(ctx, s.repomanager.Files(s.db), id)
	if err != nil || !ok {
		return ok, err
	}
	if err := s.blobs.Delete(ctx, path); err != nil {
		return true, fmt.Errorf("error deleting file content: %w", err)
	}
	return true, nil
}

// deleteRow removes the metadata row and returns the blob key it pointed to.
func (s *FileService) deleteRow(ctx context.Context, repo files.Repository, id int) (string, bool, error) {
	file, err := repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}

	ok, err := repo.DeleteByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	return file.Path, ok, nil
}
