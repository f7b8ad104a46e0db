package domain

import "context"

// Location represents a venue where classes are held.
// swagger:model Location
type Location struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// LocationRepository defines the interface for location storage
type LocationRepository interface {
	Create(ctx context.Context, location *Location) error
	GetByID(ctx context.Context, id int64) (*Location, error)
	List(ctx context.Context) ([]*Location, error)
	Update(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id int64) error
}
