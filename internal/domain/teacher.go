package domain

import "context"

// Teacher represents an instructor shown on the teachers page.
// swagger:model Teacher
type Teacher struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Bio          string  `json:"bio"`
	ImageURL     *string `json:"imageUrl"`
	Active       bool    `json:"active"`
	DisplayOrder int     `json:"displayOrder"`
}

// TeacherRepository defines the interface for teacher storage
type TeacherRepository interface {
	Create(ctx context.Context, teacher *Teacher) error
	GetByID(ctx context.Context, id int64) (*Teacher, error)
	List(ctx context.Context) ([]*Teacher, error)
	Update(ctx context.Context, teacher *Teacher) error
	Delete(ctx context.Context, id int64) error
}
