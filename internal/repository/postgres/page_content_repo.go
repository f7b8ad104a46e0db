package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type pageContentRepository struct {
	DB *sql.DB
}

func NewPageContentRepository(db *sql.DB) domain.PageContentRepository {
	return &pageContentRepository{
		DB: db,
	}
}

func (r *pageContentRepository) Create(ctx context.Context, pc *domain.PageContent) error {
	query := `
		INSERT INTO page_content (slug, title, content, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, pc.Slug, pc.Title, pc.Content, pc.UpdatedAt).Scan(&pc.ID)
}

func (r *pageContentRepository) GetByID(ctx context.Context, id int64) (*domain.PageContent, error) {
	query := `
		SELECT id, slug, title, content, updated_at
		FROM page_content
		WHERE id = $1
	`
	pc := &domain.PageContent{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&pc.ID, &pc.Slug, &pc.Title, &pc.Content, &pc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pc, nil
}

func (r *pageContentRepository) GetBySlug(ctx context.Context, slug string) (*domain.PageContent, error) {
	query := `
		SELECT id, slug, title, content, updated_at
		FROM page_content
		WHERE slug = $1
	`
	pc := &domain.PageContent{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(&pc.ID, &pc.Slug, &pc.Title, &pc.Content, &pc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pc, nil
}

func (r *pageContentRepository) List(ctx context.Context) ([]*domain.PageContent, error) {
	query := `
		SELECT id, slug, title, content, updated_at
		FROM page_content
		ORDER BY slug
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	pages := make([]*domain.PageContent, 0)
	for rows.Next() {
		pc := &domain.PageContent{}
		if err := rows.Scan(&pc.ID, &pc.Slug, &pc.Title, &pc.Content, &pc.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, pc)
	}
	return pages, rows.Err()
}

func (r *pageContentRepository) Update(ctx context.Context, pc *domain.PageContent) error {
	query := `
		UPDATE page_content
		SET slug = $2, title = $3, content = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, pc.ID, pc.Slug, pc.Title, pc.Content, pc.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pageContentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM page_content WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
