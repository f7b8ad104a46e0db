package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type classRepository struct {
	DB *sql.DB
}

func NewClassRepository(db *sql.DB) domain.ClassRepository {
	return &classRepository{
		DB: db,
	}
}

func (r *classRepository) Create(ctx context.Context, c *domain.Class) error {
	query := `
		INSERT INTO classes (title, description, age_range, duration, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Title, c.Description, c.AgeRange, c.Duration, c.Price, c.ImageURL).Scan(&c.ID)
}

func (r *classRepository) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	query := `
		SELECT id, title, description, age_range, duration, price, image_url
		FROM classes
		WHERE id = $1
	`
	c := &domain.Class{}
	var imageNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Description, &c.AgeRange, &c.Duration, &c.Price, &imageNull)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if imageNull.Valid {
		c.ImageURL = &imageNull.String
	}
	return c, nil
}

func (r *classRepository) List(ctx context.Context) ([]*domain.Class, error) {
	query := `
		SELECT id, title, description, age_range, duration, price, image_url
		FROM classes
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	classes := make([]*domain.Class, 0)
	for rows.Next() {
		c := &domain.Class{}
		var imageNull sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.AgeRange, &c.Duration, &c.Price, &imageNull); err != nil {
			return nil, err
		}
		if imageNull.Valid {
			c.ImageURL = &imageNull.String
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *classRepository) Update(ctx context.Context, c *domain.Class) error {
	query := `
		UPDATE classes
		SET title = $2, description = $3, age_range = $4, duration = $5, price = $6, image_url = $7
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, c.ID, c.Title, c.Description, c.AgeRange, c.Duration, c.Price, c.ImageURL)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
