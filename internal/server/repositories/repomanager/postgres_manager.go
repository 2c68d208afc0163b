package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/migrations"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/cities"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/files"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/users"
	"github.com/dmitrijs2005/dreamjob/internal/server/repositories/vacancies"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and
// exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Files(db dbx.DBTX) files.Repository {
	return files.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vacancies(db dbx.DBTX) vacancies.Repository {
	return vacancies.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Cities(db dbx.DBTX) cities.Repository {
	return cities.NewPostgresRepository(db)
}

// WithTx runs fn inside a database transaction.
func (m *PostgresRepositoryManager) WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, db, nil, fn)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
