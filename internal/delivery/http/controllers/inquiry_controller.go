package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegistrationRequest is the request body for POST /api/registrations.
type RegistrationRequest struct {
	SessionID   int64  `json:"sessionId"`
	ParentName  string `json:"parentName"`
	ParentEmail string `json:"parentEmail"`
	StudentName string `json:"studentName"`
	StudentAge  int    `json:"studentAge"`
}

// Validate implements Validator.
func (r RegistrationRequest) Validate() []string {
	var errs []string
	if r.SessionID <= 0 {
		errs = append(errs, "sessionId is required")
	}
	if r.ParentName == "" {
		errs = append(errs, "parentName is required")
	}
	if !emailRegexp.MatchString(r.ParentEmail) {
		errs = append(errs, "invalid parentEmail format")
	}
	if r.StudentName == "" {
		errs = append(errs, "studentName is required")
	}
	if r.StudentAge < 0 {
		errs = append(errs, "studentAge must not be negative")
	}
	return errs
}

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	InquiryType string  `json:"inquiryType"`
	Message     string  `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if !emailRegexp.MatchString(c.Email) {
		errs = append(errs, "invalid email format")
	}
	if c.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// NewsletterRequest is the request body for POST /api/newsletter.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (n NewsletterRequest) Validate() []string {
	var errs []string
	if !emailRegexp.MatchString(strings.TrimSpace(n.Email)) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// newsletterConflict is the 409 body the public site expects on a duplicate
// subscription. Deliberately unenveloped.
type newsletterConflict struct {
	Error             string `json:"error"`
	AlreadySubscribed bool   `json:"alreadySubscribed"`
}

type InquiryController struct {
	Logger  *slog.Logger
	Service domain.InquiryService
}

func NewInquiryController(logger *slog.Logger, svc domain.InquiryService) *InquiryController {
	return &InquiryController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *InquiryController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}

// ListRegistrations godoc
// @Summary List class registrations
// @Tags inquiries
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the registration list"
// @Router /api/admin/registrations [get]
func (c *InquiryController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListRegistrations(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListContactSubmissions godoc
// @Summary List contact form submissions
// @Tags inquiries
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the submission list"
// @Router /api/admin/contact-submissions [get]
func (c *InquiryController) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.ListContactSubmissions(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, subs)
}

// ListSubscribers godoc
// @Summary List newsletter subscribers
// @Tags inquiries
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the subscriber list"
// @Router /api/admin/newsletter [get]
func (c *InquiryController) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.ListSubscribers(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, subs)
}

// CreateRegistration godoc
// @Summary Submit a class registration
// @Tags inquiries
// @Accept json
// @Produce json
// @Param registration body RegistrationRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains the stored registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/registrations [post]
func (c *InquiryController) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	reg := &domain.Registration{
		SessionID:   req.SessionID,
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		StudentName: req.StudentName,
		StudentAge:  req.StudentAge,
	}
	if err := c.Service.CreateRegistration(r.Context(), reg); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Stores the submission and emails a notification to the site owner.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact form data"
// @Success 201 {object} helpers.APIResponse "data contains the stored submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/contact [post]
func (c *InquiryController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sub := &domain.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Message:     req.Message,
	}
	if err := c.Service.SubmitContactForm(r.Context(), sub); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags inquiries
// @Accept json
// @Produce json
// @Param subscription body NewsletterRequest true "Email address"
// @Success 201 {object} helpers.APIResponse "data contains the subscriber"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} controllers.newsletterConflict "already subscribed"
// @Router /api/newsletter [post]
func (c *InquiryController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONRaw(w, http.StatusConflict, newsletterConflict{
				Error:             "Email already subscribed",
				AlreadySubscribed: true,
			})
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid email")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sub)
}
