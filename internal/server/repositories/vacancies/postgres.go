package vacancies

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

const selectColumns = `SELECT id, title, description, creation_date, visible, city_id, file_id FROM vacancies`

func (r *PostgresRepository) Save(ctx context.Context, v *models.Vacancy) (*models.Vacancy, error) {
	query :=
		`INSERT INTO vacancies (title, description, creation_date, visible, city_id, file_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		v.Title, v.Description, v.CreationDate, v.Visible, v.CityID, v.FileID).Scan(&v.ID)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// Update overwrites the editable columns. creation_date is kept.
func (r *PostgresRepository) Update(ctx context.Context, v *models.Vacancy) (bool, error) {
	query :=
		`UPDATE vacancies
		 SET title = $1, description = $2, visible = $3, city_id = $4, file_id = $5
		 WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query, v.Title, v.Description, v.Visible, v.CityID, v.FileID, v.ID)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: %w", common.ErrorValidation, err)
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (*models.Vacancy, error) {
	v := &models.Vacancy{}
	err := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id).
		Scan(&v.ID, &v.Title, &v.Description, &v.CreationDate, &v.Visible, &v.CityID, &v.FileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.Vacancy, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Vacancy, 0)
	for rows.Next() {
		v := &models.Vacancy{}
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.CreationDate, &v.Visible, &v.CityID, &v.FileID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vacancies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
