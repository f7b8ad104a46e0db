package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"littlemaestros/internal/domain"
)

const uniqueViolation = "23505"

type newsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) domain.NewsletterRepository {
	return &newsletterRepository{
		DB: db,
	}
}

func (r *newsletterRepository) Create(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (email, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, sub.Email, sub.CreatedAt).Scan(&sub.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscribers
		WHERE email = $1
	`
	sub := &domain.NewsletterSubscriber{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM newsletter_subscribers
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := make([]*domain.NewsletterSubscriber, 0)
	for rows.Next() {
		sub := &domain.NewsletterSubscriber{}
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
