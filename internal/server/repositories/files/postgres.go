package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

// PostgresRepository implements file metadata storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, file *models.File) (*models.File, error) {
	query := `INSERT INTO files (name, path) VALUES ($1, $2) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, file.Name, file.Path).Scan(&file.ID); err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*models.File, error) {
	query := `SELECT id, name, path FROM files WHERE id = $1`

	f := &models.File{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.Name, &f.Path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
