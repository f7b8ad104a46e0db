package domain

import (
	"context"
	"time"
)

// PageContent is an editable block of page copy (e.g. "our-story",
// "refund-policy"). Content is markdown; ContentHTML is the rendered form
// populated by the content service on reads, never persisted.
// swagger:model PageContent
type PageContent struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"contentHtml,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PageContentRepository defines the interface for page content storage
type PageContentRepository interface {
	Create(ctx context.Context, pc *PageContent) error
	GetByID(ctx context.Context, id int64) (*PageContent, error)
	GetBySlug(ctx context.Context, slug string) (*PageContent, error)
	List(ctx context.Context) ([]*PageContent, error)
	Update(ctx context.Context, pc *PageContent) error
	Delete(ctx context.Context, id int64) error
}
