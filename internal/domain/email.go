package domain

import "context"

// Mailer sends a single email. Implementations may use SES or a no-op.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template with data and returns
// the subject, html body, and text body.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// ContactNotificationEmailData feeds the contact_notification template.
type ContactNotificationEmailData struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Message     string
}

// EmailService defines outbound email operations.
type EmailService interface {
	SendContactNotification(ctx context.Context, data *ContactNotificationEmailData) error
}
