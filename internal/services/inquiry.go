package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"littlemaestros/internal/domain"
)

const defaultPaymentStatus = "Pending"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type inquiryService struct {
	registrationRepo domain.RegistrationRepository
	contactRepo      domain.ContactRepository
	newsletterRepo   domain.NewsletterRepository
	emailService     domain.EmailService
	notifyEmail      string
	logger           *slog.Logger
	contextTimeout   time.Duration
}

// NewInquiryService creates an InquiryService. notifyEmail is the address
// that receives contact form notifications; when empty no email is sent.
func NewInquiryService(registrationRepo domain.RegistrationRepository,
	contactRepo domain.ContactRepository,
	newsletterRepo domain.NewsletterRepository,
	emailService domain.EmailService,
	notifyEmail string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.InquiryService {
	return &inquiryService{
		registrationRepo: registrationRepo,
		contactRepo:      contactRepo,
		newsletterRepo:   newsletterRepo,
		emailService:     emailService,
		notifyEmail:      notifyEmail,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *inquiryService) CreateRegistration(ctx context.Context, reg *domain.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if reg.ParentName == "" || reg.StudentName == "" {
		return domain.ErrInvalidInput
	}
	if !emailRegexp.MatchString(reg.ParentEmail) {
		return domain.ErrInvalidInput
	}
	if reg.PaymentStatus == "" {
		reg.PaymentStatus = defaultPaymentStatus
	}
	reg.CreatedAt = time.Now()
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (s *inquiryService) SubmitContactForm(ctx context.Context, sub *domain.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sub.Name == "" || sub.Message == "" {
		return domain.ErrInvalidInput
	}
	if !emailRegexp.MatchString(sub.Email) {
		return domain.ErrInvalidInput
	}
	sub.CreatedAt = time.Now()
	if err := s.contactRepo.Create(ctx, sub); err != nil {
		return fmt.Errorf("create contact submission: %w", err)
	}

	// The submission is stored; a failed notification must not fail it.
	if s.notifyEmail != "" {
		phone := ""
		if sub.Phone != nil {
			phone = *sub.Phone
		}
		data := &domain.ContactNotificationEmailData{
			Name:        sub.Name,
			Email:       sub.Email,
			Phone:       phone,
			InquiryType: sub.InquiryType,
			Message:     sub.Message,
		}
		if err := s.emailService.SendContactNotification(ctx, data); err != nil {
			s.logger.Error("contact notification email failed", "error", err)
		}
	}
	return nil
}

func (s *inquiryService) ListRegistrations(ctx context.Context) ([]*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}

func (s *inquiryService) ListContactSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	if subs == nil {
		subs = []*domain.ContactSubmission{}
	}
	return subs, nil
}

func (s *inquiryService) ListSubscribers(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.newsletterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if subs == nil {
		subs = []*domain.NewsletterSubscriber{}
	}
	return subs, nil
}

func (s *inquiryService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidInput
	}

	sub := &domain.NewsletterSubscriber{
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return sub, nil
}
