package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/cities"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/files"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/users"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/vacancies"
)

// InMemoryRepositoryManager hands out process-local repositories and
// ignores the db handles. WithTx gives no atomicity: work already done by
// fn is not undone when it fails.
type InMemoryRepositoryManager struct {
	users     *users.MemoryRepository
	files     *files.MemoryRepository
	vacancies *vacancies.MemoryRepository
	cities    *cities.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		files:     files.NewMemoryRepository(),
		vacancies: vacancies.NewMemoryRepository(),
		cities:    cities.NewMemoryRepository(cities.DefaultCities),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, _ *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository         { return m.users }
func (m *InMemoryRepositoryManager) Files(dbx.DBTX) files.Repository         { return m.files }
func (m *InMemoryRepositoryManager) Vacancies(dbx.DBTX) vacancies.Repository { return m.vacancies }
func (m *InMemoryRepositoryManager) Cities(dbx.DBTX) cities.Repository       { return m.cities }
