package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"littlemaestros/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

const sessionColumns = `id, class_id, location_id, session_name, location_name, day_of_week, time, instructor, status, start_date, end_date, duration, mainstreet_url, mainstreet_id, synced_at`

// nullString maps "" to NULL so the partial unique index on mainstreet_id
// ignores admin-created rows.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanSession(scan func(dest ...any) error) (*domain.Session, error) {
	s := &domain.Session{}
	var classNull, locNull sql.NullInt64
	var nameNull, locNameNull, durNull, urlNull, msNull sql.NullString
	var syncedNull sql.NullTime
	err := scan(&s.ID, &classNull, &locNull, &nameNull, &locNameNull, &s.DayOfWeek, &s.Time, &s.Instructor, &s.Status, &s.StartDate, &s.EndDate, &durNull, &urlNull, &msNull, &syncedNull)
	if err != nil {
		return nil, err
	}
	if classNull.Valid {
		s.ClassID = &classNull.Int64
	}
	if locNull.Valid {
		s.LocationID = &locNull.Int64
	}
	s.SessionName = nameNull.String
	s.LocationName = locNameNull.String
	s.Duration = durNull.String
	s.MainstreetURL = urlNull.String
	s.MainstreetID = msNull.String
	if syncedNull.Valid {
		t := syncedNull.Time
		s.SyncedAt = &t
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (class_id, location_id, session_name, location_name, day_of_week, time, instructor, status, start_date, end_date, duration, mainstreet_url, mainstreet_id, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	var syncedAt sql.NullTime
	if s.SyncedAt != nil {
		syncedAt = sql.NullTime{Time: *s.SyncedAt, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		s.ClassID, s.LocationID, nullString(s.SessionName), nullString(s.LocationName),
		s.DayOfWeek, s.Time, s.Instructor, s.Status, s.StartDate, s.EndDate,
		nullString(s.Duration), nullString(s.MainstreetURL), nullString(s.MainstreetID), syncedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
	s, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) GetByMainstreetID(ctx context.Context, mainstreetID string) (*domain.Session, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE mainstreet_id = $1`, mainstreetID)
	s, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) ListDetails(ctx context.Context) ([]*domain.SessionDetail, error) {
	query := `
		SELECT s.id, s.day_of_week, s.time, s.instructor, s.status, s.start_date, s.end_date,
		       s.session_name, s.location_name,
		       c.id, c.title,
		       l.id, l.name, l.address
		FROM sessions s
		LEFT JOIN classes c ON c.id = s.class_id
		LEFT JOIN locations l ON l.id = s.location_id
		ORDER BY s.start_date, s.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]*domain.SessionDetail, 0)
	for rows.Next() {
		d := &domain.SessionDetail{}
		var nameNull, locNameNull sql.NullString
		var classID sql.NullInt64
		var classTitle sql.NullString
		var locID sql.NullInt64
		var locName, locAddr sql.NullString
		if err := rows.Scan(&d.ID, &d.DayOfWeek, &d.Time, &d.Instructor, &d.Status, &d.StartDate, &d.EndDate,
			&nameNull, &locNameNull,
			&classID, &classTitle,
			&locID, &locName, &locAddr); err != nil {
			return nil, err
		}
		d.SessionName = nameNull.String
		d.LocationName = locNameNull.String
		if classID.Valid {
			d.Class = &domain.SessionClass{ID: classID.Int64, Title: classTitle.String}
		}
		if locID.Valid {
			d.Location = &domain.SessionLocation{ID: locID.Int64, Name: locName.String, Address: locAddr.String}
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE sessions
		SET class_id = $2, location_id = $3, session_name = $4, location_name = $5, day_of_week = $6, time = $7,
		    instructor = $8, status = $9, start_date = $10, end_date = $11, duration = $12
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, s.ID, s.ClassID, s.LocationID,
		nullString(s.SessionName), nullString(s.LocationName), s.DayOfWeek, s.Time,
		s.Instructor, s.Status, s.StartDate, s.EndDate, nullString(s.Duration))
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) UpdateSyncFields(ctx context.Context, id int64, f domain.SessionSyncFields) error {
	query := `
		UPDATE sessions
		SET session_name = $2, location_name = $3, day_of_week = $4, time = $5, instructor = $6,
		    start_date = $7, end_date = $8, duration = $9, mainstreet_url = $10, synced_at = $11
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id,
		nullString(f.SessionName), nullString(f.LocationName), f.DayOfWeek, f.Time, f.Instructor,
		f.StartDate, f.EndDate, nullString(f.Duration), nullString(f.MainstreetURL), f.SyncedAt,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) LatestSyncedAt(ctx context.Context) (*time.Time, error) {
	query := `
		SELECT synced_at
		FROM sessions
		WHERE mainstreet_id IS NOT NULL AND synced_at IS NOT NULL
		ORDER BY synced_at DESC
		LIMIT 1
	`
	var syncedAt time.Time
	err := r.DB.QueryRowContext(ctx, query).Scan(&syncedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &syncedAt, nil
}
