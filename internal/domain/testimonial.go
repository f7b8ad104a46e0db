package domain

import "context"

// Testimonial represents a parent quote shown on the testimonials page.
// swagger:model Testimonial
type Testimonial struct {
	ID       int64   `json:"id"`
	Quote    string  `json:"quote"`
	Author   string  `json:"author"`
	Source   *string `json:"source"` // e.g. "Google", "Yelp"
	Stars    int     `json:"stars"`
	Active   bool    `json:"active"`
	Category *string `json:"category"` // e.g. "Classes", "Parties"
}

// TestimonialRepository defines the interface for testimonial storage
type TestimonialRepository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
	// List returns all testimonials; category filters when non-empty.
	List(ctx context.Context, category string) ([]*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id int64) error
}
