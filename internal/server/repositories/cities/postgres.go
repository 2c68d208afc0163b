package cities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/dbx"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.City, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM cities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.City, 0)
	for rows.Next() {
		c := &models.City{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*models.City, error) {
	c := &models.City{}
	if err := r.db.QueryRowContext(ctx, `SELECT id, name FROM cities WHERE id = $1`, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}
