package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

var validStatuses = map[string]struct{}{
	domain.SessionStatusOpen:     {},
	domain.SessionStatusFewSpots: {},
	domain.SessionStatusFull:     {},
	domain.SessionStatusWaitlist: {},
}

// SessionRequest is the request body for creating and updating a session.
type SessionRequest struct {
	ClassID      *int64    `json:"classId"`
	LocationID   *int64    `json:"locationId"`
	SessionName  string    `json:"sessionName"`
	LocationName string    `json:"locationName"`
	DayOfWeek    string    `json:"dayOfWeek"`
	Time         string    `json:"time"`
	Instructor   string    `json:"instructor"`
	Status       string    `json:"status"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Duration     string    `json:"duration"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if s.DayOfWeek == "" {
		errs = append(errs, "dayOfWeek is required")
	}
	if s.Time == "" {
		errs = append(errs, "time is required")
	}
	if s.Status != "" {
		if _, ok := validStatuses[s.Status]; !ok {
			errs = append(errs, "status must be one of Open, Few Spots Left, Full, Waitlist")
		}
	}
	if !s.StartDate.IsZero() && !s.EndDate.IsZero() && s.EndDate.Before(s.StartDate) {
		errs = append(errs, "endDate must not be before startDate")
	}
	return errs
}

func (s SessionRequest) toDomain(id int64) *domain.Session {
	return &domain.Session{
		ID:           id,
		ClassID:      s.ClassID,
		LocationID:   s.LocationID,
		SessionName:  s.SessionName,
		LocationName: s.LocationName,
		DayOfWeek:    s.DayOfWeek,
		Time:         s.Time,
		Instructor:   s.Instructor,
		Status:       s.Status,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Duration:     s.Duration,
	}
}

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ScheduleController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "session not found")
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}

// ListSessionDetails godoc
// @Summary List the public class schedule
// @Description Sessions joined with their class title and location name/address. Sync-sourced sessions carry text names instead.
// @Tags sessions
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Router /api/sessions [get]
func (c *ScheduleController) ListSessionDetails(w http.ResponseWriter, r *http.Request) {
	details, err := c.Service.ListSessionDetails(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, details)
}

// Calendar godoc
// @Summary Schedule as an iCalendar feed
// @Tags sessions
// @Produce plain
// @Success 200 {string} string "text/calendar document"
// @Router /api/sessions/calendar.ics [get]
func (c *ScheduleController) Calendar(w http.ResponseWriter, r *http.Request) {
	feed, err := c.Service.BuildCalendar(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(feed)
}

// ListSessions godoc
// @Summary List sessions for the admin dashboard
// @Tags sessions
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the raw session list"
// @Router /api/admin/sessions [get]
func (c *ScheduleController) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessions(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Create a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body SessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/sessions [post]
func (c *ScheduleController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session := req.toDomain(0)
	if err := c.Service.CreateSession(r.Context(), session); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary Update a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param session body SessionRequest true "Session data"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/sessions/{id} [put]
func (c *ScheduleController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateSession(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/sessions/{id} [delete]
func (c *ScheduleController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteSession(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}
