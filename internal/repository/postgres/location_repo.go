package postgres

import (
	"context"
	"database/sql"
	"errors"

	"littlemaestros/internal/domain"
)

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) domain.LocationRepository {
	return &locationRepository{
		DB: db,
	}
}

func scanLocation(scan func(dest ...any) error) (*domain.Location, error) {
	l := &domain.Location{}
	var latNull, lngNull sql.NullFloat64
	if err := scan(&l.ID, &l.Name, &l.Address, &latNull, &lngNull); err != nil {
		return nil, err
	}
	if latNull.Valid {
		l.Lat = &latNull.Float64
	}
	if lngNull.Valid {
		l.Lng = &lngNull.Float64
	}
	return l, nil
}

func (r *locationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `
		INSERT INTO locations (name, address, lat, lng)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, l.Name, l.Address, l.Lat, l.Lng).Scan(&l.ID)
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := `
		SELECT id, name, address, lat, lng
		FROM locations
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	l, err := scanLocation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, name, address, lat, lng
		FROM locations
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	locations := make([]*domain.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows.Scan)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationRepository) Update(ctx context.Context, l *domain.Location) error {
	query := `
		UPDATE locations
		SET name = $2, address = $3, lat = $4, lng = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, l.ID, l.Name, l.Address, l.Lat, l.Lng)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
