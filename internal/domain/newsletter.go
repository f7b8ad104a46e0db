package domain

import (
	"context"
	"time"
)

// NewsletterSubscriber is an email address subscribed to the newsletter.
// swagger:model NewsletterSubscriber
type NewsletterSubscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsletterRepository defines the interface for subscriber storage.
// Create returns ErrDuplicateEmail when the address is already subscribed.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *NewsletterSubscriber) error
	GetByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	List(ctx context.Context) ([]*NewsletterSubscriber, error)
}
