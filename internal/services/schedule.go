package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"littlemaestros/internal/domain"
)

// meetingLength is the assumed length of one class meeting on the calendar
// feed. Session duration text describes the run of weeks, not the meeting.
const meetingLength = 45 * time.Minute

type scheduleService struct {
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewScheduleService creates a ScheduleService over session storage.
func NewScheduleService(sessionRepo domain.SessionRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *scheduleService) ListSessionDetails(ctx context.Context) ([]*domain.SessionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	details, err := s.sessionRepo.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session details: %w", err)
	}
	if details == nil {
		details = []*domain.SessionDetail{}
	}
	return details, nil
}

func (s *scheduleService) CreateSession(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if session.DayOfWeek == "" || session.Time == "" {
		return domain.ErrInvalidInput
	}
	if session.Status == "" {
		session.Status = domain.SessionStatusOpen
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *scheduleService) UpdateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if session.DayOfWeek == "" || session.Time == "" {
		return nil, domain.ErrInvalidInput
	}
	// A body without a status keeps the stored one instead of blanking it.
	if session.Status == "" {
		existing, err := s.sessionRepo.GetByID(ctx, session.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get session: %w", err)
		}
		session.Status = existing.Status
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	updated, err := s.sessionRepo.GetByID(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return updated, nil
}

func (s *scheduleService) DeleteSession(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// BuildCalendar renders the current schedule as an iCalendar feed. Each
// session becomes one weekly-recurring VEVENT running from its start date
// until its end date.
func (s *scheduleService) BuildCalendar(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	details, err := s.sessionRepo.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session details: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//Little Maestros//Schedule//EN")

	now := time.Now().UTC()
	for _, d := range details {
		start := meetingStart(d.StartDate, d.Time)

		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, fmt.Sprintf("session-%d@littlemaestros", d.ID))
		ve.Props.SetText(ical.PropSummary, calendarSummary(d))
		ve.Props.SetDateTime(ical.PropDateTimeStamp, now)
		ve.Props.SetDateTime(ical.PropDateTimeStart, start)
		ve.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(meetingLength))
		if loc := calendarLocation(d); loc != "" {
			ve.Props.SetText(ical.PropLocation, loc)
		}
		if d.Instructor != "" {
			ve.Props.SetText(ical.PropDescription, "Instructor: "+d.Instructor)
		}
		if d.EndDate.After(d.StartDate) {
			rrule := ical.NewProp(ical.PropRecurrenceRule)
			rrule.Value = fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", d.EndDate.UTC().Format("20060102T150405Z"))
			ve.Props.Add(rrule)
		}
		cal.Children = append(cal.Children, ve)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func calendarSummary(d *domain.SessionDetail) string {
	if d.Class != nil && d.Class.Title != "" {
		return d.Class.Title
	}
	if d.SessionName != "" {
		return d.SessionName
	}
	return "Class Session"
}

func calendarLocation(d *domain.SessionDetail) string {
	if d.Location != nil {
		if d.Location.Address != "" {
			return d.Location.Name + ", " + d.Location.Address
		}
		return d.Location.Name
	}
	return d.LocationName
}

// meetingStart combines a session's start date with its display time
// (e.g. "10:00 AM"). Unparseable times fall back to the bare date.
func meetingStart(date time.Time, clock string) time.Time {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(clock)))
	if err != nil {
		return date.UTC()
	}
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
