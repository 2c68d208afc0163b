package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/files"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/vacancies"
	"github.com/dmitrijs2005/dreamjob/internal/server/storage"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// txManager runs the in-memory repositories inside a real (mocked)
// transaction so commit and rollback can be asserted.
type txManager struct {
	*repomanager.InMemoryRepositoryManager
	vacancies vacancies.Repository
	files     files.Repository
}

func (m *txManager) WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, db, nil, fn)
}

func (m *txManager) Vacancies(db dbx.DBTX) vacancies.Repository {
	if m.vacancies != nil {
		return m.vacancies
	}
	return m.InMemoryRepositoryManager.Vacancies(db)
}

func (m *txManager) Files(db dbx.DBTX) files.Repository {
	if m.files != nil {
		return m.files
	}
	return m.InMemoryRepositoryManager.Files(db)
}

type failingVacancies struct {
	vacancies.Repository
	err error
}

func (f *failingVacancies) Save(context.Context, *models.Vacancy) (*models.Vacancy, error) {
	return nil, f.err
}

func (f *failingVacancies) Update(context.Context, *models.Vacancy) (bool, error) {
	return false, f.err
}

type failingFiles struct {
	files.Repository
}

func (f *failingFiles) Save(context.Context, *models.File) (*models.File, error) {
	return nil, errors.New("disk full")
}

// failingBlobs rejects every Put.
type failingBlobs struct {
	storage.MemoryStore
}

func (f *failingBlobs) Put(context.Context, string, []byte) error {
	return errors.New("bucket gone")
}

type fixture struct {
	rm      *repomanager.InMemoryRepositoryManager
	blobs   *storage.MemoryStore
	files   *FileService
	vacancy *VacancyService
}

func newFixture() *fixture {
	rm := repomanager.NewInMemoryRepositoryManager()
	blobs := storage.NewMemoryStore()
	fs := NewFileService(nil, rm, blobs)
	return &fixture{
		rm:      rm,
		blobs:   blobs,
		files:   fs,
		vacancy: NewVacancyService(nil, rm, fs),
	}
}

func withKeys(t *testing.T, keys ...string) {
	t.Helper()
	old := newStorageKey
	i := 0
	newStorageKey = func() string {
		k := keys[i]
		i++
		return k
	}
	t.Cleanup(func() { newStorageKey = old })
}
