package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"littlemaestros/internal/domain"
)

type contentService struct {
	pageContentRepo domain.PageContentRepository
	testimonialRepo domain.TestimonialRepository
	photoRepo       domain.PhotoRepository
	markdown        goldmark.Markdown
	contextTimeout  time.Duration
}

// NewContentService creates a ContentService over page content, testimonial,
// and photo storage. Page content bodies are markdown and get rendered to
// HTML on every read.
func NewContentService(pageContentRepo domain.PageContentRepository,
	testimonialRepo domain.TestimonialRepository,
	photoRepo domain.PhotoRepository,
	timeout time.Duration,
) domain.ContentService {
	return &contentService{
		pageContentRepo: pageContentRepo,
		testimonialRepo: testimonialRepo,
		photoRepo:       photoRepo,
		markdown:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		contextTimeout:  timeout,
	}
}

func (s *contentService) renderContent(pc *domain.PageContent) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(pc.Content), &buf); err != nil {
		// Fall back to the raw markdown rather than failing the read.
		pc.ContentHTML = pc.Content
		return
	}
	pc.ContentHTML = buf.String()
}

func (s *contentService) ListPageContent(ctx context.Context) ([]*domain.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pages, err := s.pageContentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list page content: %w", err)
	}
	if pages == nil {
		pages = []*domain.PageContent{}
	}
	for _, pc := range pages {
		s.renderContent(pc)
	}
	return pages, nil
}

func (s *contentService) GetPageContentBySlug(ctx context.Context, slug string) (*domain.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pc, err := s.pageContentRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get page content: %w", err)
	}
	s.renderContent(pc)
	return pc, nil
}

func (s *contentService) CreatePageContent(ctx context.Context, pc *domain.PageContent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if pc.Slug == "" || pc.Title == "" {
		return domain.ErrInvalidInput
	}
	pc.UpdatedAt = time.Now()
	if err := s.pageContentRepo.Create(ctx, pc); err != nil {
		return fmt.Errorf("create page content: %w", err)
	}
	return nil
}

func (s *contentService) UpdatePageContent(ctx context.Context, pc *domain.PageContent) (*domain.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if pc.Slug == "" || pc.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	pc.UpdatedAt = time.Now()
	if err := s.pageContentRepo.Update(ctx, pc); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update page content: %w", err)
	}
	s.renderContent(pc)
	return pc, nil
}

func (s *contentService) DeletePageContent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.pageContentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete page content: %w", err)
	}
	return nil
}

func (s *contentService) ListTestimonials(ctx context.Context, category string) ([]*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	testimonials, err := s.testimonialRepo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	if testimonials == nil {
		testimonials = []*domain.Testimonial{}
	}
	return testimonials, nil
}

func (s *contentService) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if t.Quote == "" || t.Author == "" {
		return domain.ErrInvalidInput
	}
	if err := s.testimonialRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (s *contentService) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if t.Quote == "" || t.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.testimonialRepo.Update(ctx, t); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return t, nil
}

func (s *contentService) DeleteTestimonial(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

func (s *contentService) ListPhotos(ctx context.Context, activeOnly bool) ([]*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	photos, err := s.photoRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	if photos == nil {
		photos = []*domain.Photo{}
	}
	return photos, nil
}

func (s *contentService) CreatePhoto(ctx context.Context, photo *domain.Photo) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if photo.Title == "" || photo.ImageURL == "" {
		return domain.ErrInvalidInput
	}
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

func (s *contentService) UpdatePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if photo.Title == "" || photo.ImageURL == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.photoRepo.Update(ctx, photo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return photo, nil
}

func (s *contentService) DeletePhoto(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.photoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
