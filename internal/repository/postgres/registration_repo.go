package postgres

import (
	"context"
	"database/sql"

	"littlemaestros/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (session_id, parent_name, parent_email, student_name, student_age, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, reg.SessionID, reg.ParentName, reg.ParentEmail, reg.StudentName, reg.StudentAge, reg.PaymentStatus, reg.CreatedAt).Scan(&reg.ID)
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, session_id, parent_name, parent_email, student_name, student_age, payment_status, created_at
		FROM registrations
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.SessionID, &reg.ParentName, &reg.ParentEmail, &reg.StudentName, &reg.StudentAge, &reg.PaymentStatus, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
