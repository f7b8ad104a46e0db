package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type testimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepository(db *sql.DB) domain.TestimonialRepository {
	return &testimonialRepository{
		DB: db,
	}
}

func scanTestimonial(scan func(dest ...any) error) (*domain.Testimonial, error) {
	t := &domain.Testimonial{}
	var sourceNull, categoryNull sql.NullString
	if err := scan(&t.ID, &t.Quote, &t.Author, &sourceNull, &t.Stars, &t.Active, &categoryNull); err != nil {
		return nil, err
	}
	if sourceNull.Valid {
		t.Source = &sourceNull.String
	}
	if categoryNull.Valid {
		t.Category = &categoryNull.String
	}
	return t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (quote, author, source, stars, active, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.Quote, t.Author, t.Source, t.Stars, t.Active, t.Category).Scan(&t.ID)
}

func (r *testimonialRepository) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	query := `
		SELECT id, quote, author, source, stars, active, category
		FROM testimonials
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	t, err := scanTestimonial(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *testimonialRepository) List(ctx context.Context, category string) ([]*domain.Testimonial, error) {
	query := `
		SELECT id, quote, author, source, stars, active, category
		FROM testimonials
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	testimonials := make([]*domain.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows.Scan)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *testimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	query := `
		UPDATE testimonials
		SET quote = $2, author = $3, source = $4, stars = $5, active = $6, category = $7
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, t.ID, t.Quote, t.Author, t.Source, t.Stars, t.Active, t.Category)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
