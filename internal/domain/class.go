package domain

import "context"

// Class represents a class offering (e.g. "Music Makers 1", ages 0-18 months).
// swagger:model Class
type Class struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AgeRange    string  `json:"ageRange"`
	Duration    string  `json:"duration"`
	Price       int     `json:"price"` // price in cents
	ImageURL    *string `json:"imageUrl"`
}

// ClassRepository defines the interface for class storage
type ClassRepository interface {
	Create(ctx context.Context, class *Class) error
	GetByID(ctx context.Context, id int64) (*Class, error)
	List(ctx context.Context) ([]*Class, error)
	Update(ctx context.Context, class *Class) error
	Delete(ctx context.Context, id int64) error
}
