package postgres

import (
	"context"
	"database/sql"

	"littlemaestros/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{
		DB: db,
	}
}

func (r *contactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, email, phone, inquiry_type, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, sub.Name, sub.Email, sub.Phone, sub.InquiryType, sub.Message, sub.CreatedAt).Scan(&sub.ID)
}

func (r *contactRepository) List(ctx context.Context) ([]*domain.ContactSubmission, error) {
	query := `
		SELECT id, name, email, phone, inquiry_type, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := make([]*domain.ContactSubmission, 0)
	for rows.Next() {
		sub := &domain.ContactSubmission{}
		var phoneNull sql.NullString
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &phoneNull, &sub.InquiryType, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, err
		}
		if phoneNull.Valid {
			sub.Phone = &phoneNull.String
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
