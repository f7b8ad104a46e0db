package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"littlemaestros/internal/domain"
)

// defaultDurationWeeks is assumed when a session's duration text does not
// name a number of weeks.
const defaultDurationWeeks = 10

var durationWeeksPattern = regexp.MustCompile(`(?i)(\d+)\s*weeks?`)

type syncService struct {
	sessionRepo    domain.SessionRepository
	fetcher        domain.PageFetcher
	parser         domain.SessionParser
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSyncService creates the MainStreet sync orchestrator: fetch the booking
// page, parse it, and upsert every parsed row into session storage.
func NewSyncService(sessionRepo domain.SessionRepository,
	fetcher domain.PageFetcher,
	parser domain.SessionParser,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SyncService {
	return &syncService{
		sessionRepo:    sessionRepo,
		fetcher:        fetcher,
		parser:         parser,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Run performs one synchronization pass. A page that parses to zero rows
// returns a SyncDiagnosticError describing why; individual rows that fail to
// persist are reported in the result without aborting the pass.
func (s *syncService) Run(ctx context.Context) (*domain.SyncReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	html, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch mainstreet page: %w", err)
	}

	parsed, skipped := s.parser.Parse(html)
	if len(parsed) == 0 {
		return nil, &domain.SyncDiagnosticError{Debug: s.parser.Diagnose(html)}
	}

	result := s.syncAll(ctx, parsed)
	result.Skipped = skipped

	s.logger.Info("mainstreet sync complete",
		"synced", result.Synced,
		"total", result.Total,
		"skipped", result.Skipped,
		"failed", len(result.Errors),
	)

	return &domain.SyncReport{
		Success:   true,
		Synced:    result.Synced,
		Total:     result.Total,
		Skipped:   result.Skipped,
		Errors:    result.Errors,
		Timestamp: time.Now(),
	}, nil
}

// syncAll folds parsed sessions through the upsert engine one at a time so a
// bad row never blocks the rest.
func (s *syncService) syncAll(ctx context.Context, parsed []domain.ParsedSession) domain.SyncResult {
	result := domain.SyncResult{Total: len(parsed)}
	for _, p := range parsed {
		if err := s.syncOne(ctx, p); err != nil {
			s.logger.Error("sync record failed", "mainstreetId", p.MainstreetID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to sync %s: %v", p.MainstreetID, err))
			continue
		}
		result.Synced++
	}
	return result
}

// syncOne upserts a single parsed row keyed by its MainStreet id. Existing
// rows keep their status and any admin-assigned class/location links; only
// the sync-owned fields are overwritten.
func (s *syncService) syncOne(ctx context.Context, p domain.ParsedSession) error {
	weeks := durationWeeks(p.Duration)
	endDate := p.StartDate.AddDate(0, 0, weeks*7)
	now := time.Now()

	existing, err := s.sessionRepo.GetByMainstreetID(ctx, p.MainstreetID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup session: %w", err)
	}

	if existing != nil {
		fields := domain.SessionSyncFields{
			SessionName:   p.SessionName,
			LocationName:  p.LocationName,
			DayOfWeek:     p.DayOfWeek,
			Time:          p.Time,
			Instructor:    p.Instructor,
			StartDate:     p.StartDate,
			EndDate:       endDate,
			Duration:      p.Duration,
			MainstreetURL: p.MainstreetURL,
			SyncedAt:      now,
		}
		if err := s.sessionRepo.UpdateSyncFields(ctx, existing.ID, fields); err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		return nil
	}

	session := &domain.Session{
		SessionName:   p.SessionName,
		LocationName:  p.LocationName,
		DayOfWeek:     p.DayOfWeek,
		Time:          p.Time,
		Instructor:    p.Instructor,
		Status:        domain.SessionStatusOpen,
		StartDate:     p.StartDate,
		EndDate:       endDate,
		Duration:      p.Duration,
		MainstreetURL: p.MainstreetURL,
		MainstreetID:  p.MainstreetID,
		SyncedAt:      &now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// durationWeeks extracts the run length in weeks from text like "10 weeks".
func durationWeeks(duration string) int {
	m := durationWeeksPattern.FindStringSubmatch(duration)
	if m == nil {
		return defaultDurationWeeks
	}
	weeks, err := strconv.Atoi(m[1])
	if err != nil || weeks <= 0 {
		return defaultDurationWeeks
	}
	return weeks
}

func (s *syncService) Status(ctx context.Context) (*domain.SyncStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	last, err := s.sessionRepo.LatestSyncedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest synced at: %w", err)
	}
	return &domain.SyncStatus{
		LastSync:      last,
		HasSyncedData: last != nil,
	}, nil
}

// Probe fetches the booking page without writing anything and reports what
// the parser sees, so an operator can debug a failing sync.
func (s *syncService) Probe(ctx context.Context) (*domain.ProbeReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	status, contentType, html, err := s.fetcher.Probe(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe mainstreet page: %w", err)
	}

	sample := html
	if len(sample) > 2000 {
		sample = sample[:2000]
	}
	return &domain.ProbeReport{
		Status:      status,
		ContentType: contentType,
		HTMLSample:  sample,
		SyncDebug:   s.parser.Diagnose(html),
	}, nil
}
