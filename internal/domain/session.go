package domain

import (
	"context"
	"time"
)

// Session status values shown on the public schedule.
const (
	SessionStatusOpen     = "Open"
	SessionStatusFewSpots = "Few Spots Left"
	SessionStatusFull     = "Full"
	SessionStatusWaitlist = "Waitlist"
)

// Session represents one recurring weekly class meeting. Sessions created by
// an admin link to a Class and Location by id; sessions created by the
// MainStreet sync carry denormalized sessionName/locationName text and a
// stable MainstreetID instead.
// swagger:model Session
type Session struct {
	ID            int64      `json:"id"`
	ClassID       *int64     `json:"classId"`
	LocationID    *int64     `json:"locationId"`
	SessionName   string     `json:"sessionName,omitempty"`
	LocationName  string     `json:"locationName,omitempty"`
	DayOfWeek     string     `json:"dayOfWeek"`
	Time          string     `json:"time"`
	Instructor    string     `json:"instructor"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Duration      string     `json:"duration,omitempty"`
	MainstreetURL string     `json:"mainstreetUrl,omitempty"`
	MainstreetID  string     `json:"mainstreetId,omitempty"`
	SyncedAt      *time.Time `json:"syncedAt,omitempty"`
}

// SessionClass is the class summary joined onto a public session listing.
type SessionClass struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SessionLocation is the location summary joined onto a public session listing.
type SessionLocation struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SessionDetail is a session with its class and location resolved for the
// public schedule. Class and Location are nil for sync-sourced sessions.
type SessionDetail struct {
	ID           int64            `json:"id"`
	DayOfWeek    string           `json:"dayOfWeek"`
	Time         string           `json:"time"`
	Instructor   string           `json:"instructor"`
	Status       string           `json:"status"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	SessionName  string           `json:"sessionName,omitempty"`
	LocationName string           `json:"locationName,omitempty"`
	Class        *SessionClass    `json:"class"`
	Location     *SessionLocation `json:"location"`
}

// SessionSyncFields are the sync-owned columns overwritten on re-sync.
// Status, class/location links, and the row id are never touched.
type SessionSyncFields struct {
	SessionName   string
	LocationName  string
	DayOfWeek     string
	Time          string
	Instructor    string
	StartDate     time.Time
	EndDate       time.Time
	Duration      string
	MainstreetURL string
	SyncedAt      time.Time
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	GetByMainstreetID(ctx context.Context, mainstreetID string) (*Session, error)
	List(ctx context.Context) ([]*Session, error)
	ListDetails(ctx context.Context) ([]*SessionDetail, error)
	Update(ctx context.Context, session *Session) error
	UpdateSyncFields(ctx context.Context, id int64, fields SessionSyncFields) error
	Delete(ctx context.Context, id int64) error
	LatestSyncedAt(ctx context.Context) (*time.Time, error)
}

// ScheduleService defines the business logic for the class schedule.
type ScheduleService interface {
	ListSessions(ctx context.Context) ([]*Session, error)
	ListSessionDetails(ctx context.Context) ([]*SessionDetail, error)
	CreateSession(ctx context.Context, session *Session) error
	UpdateSession(ctx context.Context, session *Session) (*Session, error)
	DeleteSession(ctx context.Context, id int64) error
	BuildCalendar(ctx context.Context) ([]byte, error)
}
