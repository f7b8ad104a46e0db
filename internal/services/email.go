package services

import (
	"context"
	"fmt"
	"log/slog"

	"littlemaestros/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	to       string
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that sends notifications to the
// given address using the Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, to string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, to: to, logger: logger}
}

// SendContactNotification sends the contact form notification email using the
// "contact_notification" template and the given data.
func (s *emailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_notification template: %w", err)
	}
	if err := s.mailer.Send(s.to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	s.logger.Info("contact notification sent", "to", s.to, "from", data.Email)
	return nil
}
