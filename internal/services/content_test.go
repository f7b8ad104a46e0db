package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littlemaestros/internal/domain"
)

// fakePageContentRepo is an in-memory PageContentRepository for tests.
type fakePageContentRepo struct {
	byID   map[int64]*domain.PageContent
	nextID int64
}

func newFakePageContentRepo() *fakePageContentRepo {
	return &fakePageContentRepo{byID: make(map[int64]*domain.PageContent), nextID: 1}
}

func (f *fakePageContentRepo) Create(ctx context.Context, pc *domain.PageContent) error {
	pc.ID = f.nextID
	f.nextID++
	copied := *pc
	f.byID[pc.ID] = &copied
	return nil
}

func (f *fakePageContentRepo) GetByID(ctx context.Context, id int64) (*domain.PageContent, error) {
	if pc, ok := f.byID[id]; ok {
		copied := *pc
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePageContentRepo) GetBySlug(ctx context.Context, slug string) (*domain.PageContent, error) {
	for _, pc := range f.byID {
		if pc.Slug == slug {
			copied := *pc
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePageContentRepo) List(ctx context.Context) ([]*domain.PageContent, error) {
	var out []*domain.PageContent
	for id := int64(1); id < f.nextID; id++ {
		if pc, ok := f.byID[id]; ok {
			copied := *pc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakePageContentRepo) Update(ctx context.Context, pc *domain.PageContent) error {
	if _, ok := f.byID[pc.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *pc
	f.byID[pc.ID] = &copied
	return nil
}

func (f *fakePageContentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeTestimonialRepo is an in-memory TestimonialRepository for tests.
type fakeTestimonialRepo struct {
	byID   map[int64]*domain.Testimonial
	nextID int64
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{byID: make(map[int64]*domain.Testimonial), nextID: 1}
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	t.ID = f.nextID
	f.nextID++
	copied := *t
	f.byID[t.ID] = &copied
	return nil
}

func (f *fakeTestimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTestimonialRepo) List(ctx context.Context, category string) ([]*domain.Testimonial, error) {
	var out []*domain.Testimonial
	for id := int64(1); id < f.nextID; id++ {
		t, ok := f.byID[id]
		if !ok {
			continue
		}
		if category != "" && (t.Category == nil || *t.Category != category) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, t *domain.Testimonial) error {
	if _, ok := f.byID[t.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *t
	f.byID[t.ID] = &copied
	return nil
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakePhotoRepo is an in-memory PhotoRepository for tests.
type fakePhotoRepo struct {
	byID   map[int64]*domain.Photo
	nextID int64
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{byID: make(map[int64]*domain.Photo), nextID: 1}
}

func (f *fakePhotoRepo) Create(ctx context.Context, p *domain.Photo) error {
	p.ID = f.nextID
	f.nextID++
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakePhotoRepo) GetByID(ctx context.Context, id int64) (*domain.Photo, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePhotoRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Photo, error) {
	var out []*domain.Photo
	for id := int64(1); id < f.nextID; id++ {
		p, ok := f.byID[id]
		if !ok {
			continue
		}
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePhotoRepo) Update(ctx context.Context, p *domain.Photo) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakePhotoRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newTestContentService() (domain.ContentService, *fakePageContentRepo, *fakeTestimonialRepo, *fakePhotoRepo) {
	pages := newFakePageContentRepo()
	testimonials := newFakeTestimonialRepo()
	photos := newFakePhotoRepo()
	return NewContentService(pages, testimonials, photos, 5*time.Second), pages, testimonials, photos
}

func TestGetPageContentRendersMarkdown(t *testing.T) {
	svc, pages, _, _ := newTestContentService()
	require.NoError(t, pages.Create(context.Background(), &domain.PageContent{
		Slug:    "our-story",
		Title:   "Our Story",
		Content: "# Welcome\n\nMusic for *everyone*.",
	}))

	pc, err := svc.GetPageContentBySlug(context.Background(), "our-story")

	require.NoError(t, err)
	assert.Contains(t, pc.ContentHTML, "<h1")
	assert.Contains(t, pc.ContentHTML, "<em>everyone</em>")
	// The stored markdown is untouched.
	assert.Contains(t, pc.Content, "# Welcome")
}

func TestGetPageContentEscapesRawHTML(t *testing.T) {
	svc, pages, _, _ := newTestContentService()
	require.NoError(t, pages.Create(context.Background(), &domain.PageContent{
		Slug:    "refund-policy",
		Title:   "Refunds",
		Content: "be nice <script>alert(1)</script>",
	}))

	pc, err := svc.GetPageContentBySlug(context.Background(), "refund-policy")

	require.NoError(t, err)
	assert.NotContains(t, pc.ContentHTML, "<script>")
}

func TestGetPageContentUnknownSlug(t *testing.T) {
	svc, _, _, _ := newTestContentService()

	_, err := svc.GetPageContentBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePageContentBumpsUpdatedAt(t *testing.T) {
	svc, pages, _, _ := newTestContentService()
	stale := time.Now().Add(-24 * time.Hour)
	require.NoError(t, pages.Create(context.Background(), &domain.PageContent{
		Slug: "our-story", Title: "Our Story", Content: "old", UpdatedAt: stale,
	}))

	updated, err := svc.UpdatePageContent(context.Background(), &domain.PageContent{
		ID: 1, Slug: "our-story", Title: "Our Story", Content: "new",
	})

	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(stale))
	assert.Contains(t, updated.ContentHTML, "new")
}

func TestListTestimonialsByCategory(t *testing.T) {
	svc, _, testimonials, _ := newTestContentService()
	classes := "Classes"
	parties := "Parties"
	for _, tm := range []*domain.Testimonial{
		{Quote: "Great!", Author: "A", Category: &classes},
		{Quote: "Fun!", Author: "B", Category: &parties},
		{Quote: "Loved it!", Author: "C", Category: &classes},
	} {
		require.NoError(t, testimonials.Create(context.Background(), tm))
	}

	all, err := svc.ListTestimonials(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.ListTestimonials(context.Background(), "Classes")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].Author)
	assert.Equal(t, "C", filtered[1].Author)
}

func TestListPhotosActiveOnly(t *testing.T) {
	svc, _, _, photos := newTestContentService()
	for _, p := range []*domain.Photo{
		{Title: "Recital", ImageURL: "a.jpg", Active: true},
		{Title: "Archived", ImageURL: "b.jpg", Active: false},
	} {
		require.NoError(t, photos.Create(context.Background(), p))
	}

	public, err := svc.ListPhotos(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Recital", public[0].Title)

	admin, err := svc.ListPhotos(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestCreatePhotoRequiresTitleAndURL(t *testing.T) {
	svc, _, _, _ := newTestContentService()

	err := svc.CreatePhoto(context.Background(), &domain.Photo{Title: "", ImageURL: "a.jpg"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.CreatePhoto(context.Background(), &domain.Photo{Title: "Recital", ImageURL: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
