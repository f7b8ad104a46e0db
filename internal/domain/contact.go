package domain

import (
	"context"
	"time"
)

// ContactSubmission is a message submitted through the contact form.
// swagger:model ContactSubmission
type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	InquiryType string    `json:"inquiryType"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactRepository defines the interface for contact submission storage
type ContactRepository interface {
	Create(ctx context.Context, sub *ContactSubmission) error
	List(ctx context.Context) ([]*ContactSubmission, error)
}
