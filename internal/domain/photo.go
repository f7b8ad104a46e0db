package domain

import (
	"context"
	"time"
)

// Photo represents a gallery image.
// swagger:model Photo
type Photo struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"` // Classes, Parties, Events
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PhotoRepository defines the interface for gallery photo storage
type PhotoRepository interface {
	Create(ctx context.Context, photo *Photo) error
	GetByID(ctx context.Context, id int64) (*Photo, error)
	// List returns all photos; activeOnly restricts to publicly visible ones.
	List(ctx context.Context, activeOnly bool) ([]*Photo, error)
	Update(ctx context.Context, photo *Photo) error
	Delete(ctx context.Context, id int64) error
}
