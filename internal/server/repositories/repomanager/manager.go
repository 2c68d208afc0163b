// Package repomanager vends repository implementations bound to a database
// handle and runs work inside transactions.
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

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Users(db dbx.DBTX) users.Repository
	Files(db dbx.DBTX) files.Repository
	Vacancies(db dbx.DBTX) vacancies.Repository
	Cities(db dbx.DBTX) cities.Repository
}
