package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoSessionsFound signals a sync run that parsed zero class rows. It is
// always wrapped in a SyncDiagnosticError carrying the page diagnostics.
var ErrNoSessionsFound = errors.New("no sessions found on mainstreet page")

// ParsedSession is one class row extracted from the MainStreet booking page.
// It exists only for the duration of a sync run and is never persisted.
type ParsedSession struct {
	SessionName   string
	LocationName  string
	DayOfWeek     string
	Time          string
	StartDate     time.Time
	Duration      string
	Instructor    string
	MainstreetURL string
	MainstreetID  string
}

// PageFetcher fetches the raw MainStreet booking page (or a test double).
type PageFetcher interface {
	Fetch(ctx context.Context) (html string, err error)
	// Probe fetches without treating a non-2xx status as an error,
	// returning the upstream status and content type for diagnostics.
	Probe(ctx context.Context) (status int, contentType, html string, err error)
}

// SessionParser extracts ParsedSessions from raw booking-page HTML.
// Parse is a pure function of its input; skipped counts rows dropped for
// missing required fields or too few cells.
type SessionParser interface {
	Parse(html string) (sessions []ParsedSession, skipped int)
	Diagnose(html string) SyncDebug
}

// SyncDebug describes why a page yielded zero rows, so an operator can tell
// "site is empty" apart from "our markers no longer match".
type SyncDebug struct {
	HasTable      bool     `json:"hasTable"`
	HasItemRows   bool     `json:"hasItemRows"`
	HasItemCells  bool     `json:"hasItemCells"`
	RowMatchCount int      `json:"rowMatchCount"`
	HTMLLength    int      `json:"htmlLength"`
	TableSample   string   `json:"tableSample"`
	FirstRows     []string `json:"firstRows,omitempty"`
}

// SyncDiagnosticError is returned when a fetched page parses to zero rows.
type SyncDiagnosticError struct {
	Debug SyncDebug
}

func (e *SyncDiagnosticError) Error() string { return ErrNoSessionsFound.Error() }

func (e *SyncDiagnosticError) Unwrap() error { return ErrNoSessionsFound }

// SyncResult is the outcome of folding parsed sessions through the upsert
// engine. Errors holds one entry per record that failed to persist.
type SyncResult struct {
	Synced  int
	Total   int
	Skipped int
	Errors  []string
}

// SyncReport is the JSON payload returned by the sync endpoint.
type SyncReport struct {
	Success   bool      `json:"success"`
	Synced    int       `json:"synced"`
	Total     int       `json:"total"`
	Skipped   int       `json:"skipped"`
	Errors    []string  `json:"errors,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SyncStatus reports when sync-sourced data was last written.
type SyncStatus struct {
	LastSync      *time.Time `json:"lastSync"`
	HasSyncedData bool       `json:"hasSyncedData"`
}

// ProbeReport is the payload of the admin fetch-diagnostics endpoint.
type ProbeReport struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	HTMLSample  string `json:"htmlSample"`
	SyncDebug
}

// SyncService runs one on-demand synchronization pass against MainStreet.
type SyncService interface {
	Run(ctx context.Context) (*SyncReport, error)
	Status(ctx context.Context) (*SyncStatus, error)
	Probe(ctx context.Context) (*ProbeReport, error)
}
