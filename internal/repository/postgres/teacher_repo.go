package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type teacherRepository struct {
	DB *sql.DB
}

func NewTeacherRepository(db *sql.DB) domain.TeacherRepository {
	return &teacherRepository{
		DB: db,
	}
}

func scanTeacher(scan func(dest ...any) error) (*domain.Teacher, error) {
	t := &domain.Teacher{}
	var imageNull sql.NullString
	if err := scan(&t.ID, &t.Name, &t.Bio, &imageNull, &t.Active, &t.DisplayOrder); err != nil {
		return nil, err
	}
	if imageNull.Valid {
		t.ImageURL = &imageNull.String
	}
	return t, nil
}

func (r *teacherRepository) Create(ctx context.Context, t *domain.Teacher) error {
	query := `
		INSERT INTO teachers (name, bio, image_url, active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.Name, t.Bio, t.ImageURL, t.Active, t.DisplayOrder).Scan(&t.ID)
}

func (r *teacherRepository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	query := `
		SELECT id, name, bio, image_url, active, display_order
		FROM teachers
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	t, err := scanTeacher(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *teacherRepository) List(ctx context.Context) ([]*domain.Teacher, error) {
	query := `
		SELECT id, name, bio, image_url, active, display_order
		FROM teachers
		ORDER BY display_order, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	teachers := make([]*domain.Teacher, 0)
	for rows.Next() {
		t, err := scanTeacher(rows.Scan)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *teacherRepository) Update(ctx context.Context, t *domain.Teacher) error {
	query := `
		UPDATE teachers
		SET name = $2, bio = $3, image_url = $4, active = $5, display_order = $6
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, t.ID, t.Name, t.Bio, t.ImageURL, t.Active, t.DisplayOrder)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *teacherRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
