package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type photoRepository struct {
	DB *sql.DB
}

func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{
		DB: db,
	}
}

func scanPhoto(scan func(dest ...any) error) (*domain.Photo, error) {
	p := &domain.Photo{}
	var descNull sql.NullString
	if err := scan(&p.ID, &p.Title, &p.ImageURL, &p.Category, &descNull, &p.DisplayOrder, &p.Active, &p.CreatedAt); err != nil {
		return nil, err
	}
	if descNull.Valid {
		p.Description = &descNull.String
	}
	return p, nil
}

func (r *photoRepository) Create(ctx context.Context, p *domain.Photo) error {
	query := `
		INSERT INTO photos (title, image_url, category, description, display_order, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Title, p.ImageURL, p.Category, p.Description, p.DisplayOrder, p.Active, p.CreatedAt).Scan(&p.ID)
}

func (r *photoRepository) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	query := `
		SELECT id, title, image_url, category, description, display_order, active, created_at
		FROM photos
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	p, err := scanPhoto(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *photoRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Photo, error) {
	query := `
		SELECT id, title, image_url, category, description, display_order, active, created_at
		FROM photos
	`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY display_order, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	photos := make([]*domain.Photo, 0)
	for rows.Next() {
		p, err := scanPhoto(rows.Scan)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *photoRepository) Update(ctx context.Context, p *domain.Photo) error {
	query := `
		UPDATE photos
		SET title = $2, image_url = $3, category = $4, description = $5, display_order = $6, active = $7
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, p.ID, p.Title, p.ImageURL, p.Category, p.Description, p.DisplayOrder, p.Active)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *photoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
