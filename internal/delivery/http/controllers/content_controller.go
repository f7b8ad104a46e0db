package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

// PageContentRequest is the request body for creating and updating page copy.
type PageContentRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate implements Validator.
func (p PageContentRequest) Validate() []string {
	var errs []string
	if p.Slug == "" {
		errs = append(errs, "slug is required")
	}
	if p.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

func (p PageContentRequest) toDomain(id int64) *domain.PageContent {
	return &domain.PageContent{
		ID:      id,
		Slug:    p.Slug,
		Title:   p.Title,
		Content: p.Content,
	}
}

// TestimonialRequest is the request body for creating and updating a testimonial.
type TestimonialRequest struct {
	Quote    string  `json:"quote"`
	Author   string  `json:"author"`
	Source   *string `json:"source"`
	Stars    *int    `json:"stars"`
	Active   *bool   `json:"active"`
	Category *string `json:"category"`
}

// Validate implements Validator.
func (t TestimonialRequest) Validate() []string {
	var errs []string
	if t.Quote == "" {
		errs = append(errs, "quote is required")
	}
	if t.Author == "" {
		errs = append(errs, "author is required")
	}
	if t.Stars != nil && (*t.Stars < 1 || *t.Stars > 5) {
		errs = append(errs, "stars must be between 1 and 5")
	}
	return errs
}

func (t TestimonialRequest) toDomain(id int64) *domain.Testimonial {
	stars := 5
	if t.Stars != nil {
		stars = *t.Stars
	}
	active := true
	if t.Active != nil {
		active = *t.Active
	}
	return &domain.Testimonial{
		ID:       id,
		Quote:    t.Quote,
		Author:   t.Author,
		Source:   t.Source,
		Stars:    stars,
		Active:   active,
		Category: t.Category,
	}
}

// PhotoRequest is the request body for creating and updating a gallery photo.
type PhotoRequest struct {
	Title        string  `json:"title"`
	ImageURL     string  `json:"imageUrl"`
	Category     string  `json:"category"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
	Active       *bool   `json:"active"`
}

// Validate implements Validator.
func (p PhotoRequest) Validate() []string {
	var errs []string
	if p.Title == "" {
		errs = append(errs, "title is required")
	}
	if p.ImageURL == "" {
		errs = append(errs, "imageUrl is required")
	}
	return errs
}

func (p PhotoRequest) toDomain(id int64) *domain.Photo {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return &domain.Photo{
		ID:           id,
		Title:        p.Title,
		ImageURL:     p.ImageURL,
		Category:     p.Category,
		Description:  p.Description,
		DisplayOrder: p.DisplayOrder,
		Active:       active,
	}
}

type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ContentController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}

// ListPageContent godoc
// @Summary List all page content blocks
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the page content list"
// @Router /api/content [get]
func (c *ContentController) ListPageContent(w http.ResponseWriter, r *http.Request) {
	pages, err := c.Service.ListPageContent(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, pages)
}

// GetPageContent godoc
// @Summary Get a page content block by slug
// @Tags content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} helpers.APIResponse "data contains the page content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/content/{slug} [get]
func (c *ContentController) GetPageContent(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slug")
		return
	}
	pc, err := c.Service.GetPageContentBySlug(r.Context(), slug)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, pc)
}

// CreatePageContent godoc
// @Summary Create a page content block
// @Tags content
// @Accept json
// @Produce json
// @Param content body PageContentRequest true "Page content data"
// @Success 201 {object} helpers.APIResponse "data contains the created content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/content [post]
func (c *ContentController) CreatePageContent(w http.ResponseWriter, r *http.Request) {
	var req PageContentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	pc := req.toDomain(0)
	if err := c.Service.CreatePageContent(r.Context(), pc); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, pc)
}

// UpdatePageContent godoc
// @Summary Update a page content block
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param content body PageContentRequest true "Page content data"
// @Success 200 {object} helpers.APIResponse "data contains the updated content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/content/{id} [put]
func (c *ContentController) UpdatePageContent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req PageContentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdatePageContent(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeletePageContent godoc
// @Summary Delete a page content block
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/content/{id} [delete]
func (c *ContentController) DeletePageContent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeletePageContent(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}

// ListTestimonials godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} helpers.APIResponse "data contains the testimonial list"
// @Router /api/testimonials [get]
func (c *ContentController) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	testimonials, err := c.Service.ListTestimonials(r.Context(), category)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, testimonials)
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body TestimonialRequest true "Testimonial data"
// @Success 201 {object} helpers.APIResponse "data contains the created testimonial"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/testimonials [post]
func (c *ContentController) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	t := req.toDomain(0)
	if err := c.Service.CreateTestimonial(r.Context(), t); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, t)
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Param testimonial body TestimonialRequest true "Testimonial data"
// @Success 200 {object} helpers.APIResponse "data contains the updated testimonial"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/testimonials/{id} [put]
func (c *ContentController) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req TestimonialRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateTestimonial(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/testimonials/{id} [delete]
func (c *ContentController) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteTestimonial(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}

// ListPhotos godoc
// @Summary List active gallery photos
// @Tags photos
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the photo list"
// @Router /api/photos [get]
func (c *ContentController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := c.Service.ListPhotos(r.Context(), true)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, photos)
}

// ListAllPhotos godoc
// @Summary List all gallery photos, including inactive
// @Tags photos
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the photo list"
// @Router /api/admin/photos [get]
func (c *ContentController) ListAllPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := c.Service.ListPhotos(r.Context(), false)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, photos)
}

// CreatePhoto godoc
// @Summary Create a gallery photo
// @Tags photos
// @Accept json
// @Produce json
// @Param photo body PhotoRequest true "Photo data"
// @Success 201 {object} helpers.APIResponse "data contains the created photo"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/photos [post]
func (c *ContentController) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req PhotoRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	photo := req.toDomain(0)
	if err := c.Service.CreatePhoto(r.Context(), photo); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, photo)
}

// UpdatePhoto godoc
// @Summary Update a gallery photo
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param photo body PhotoRequest true "Photo data"
// @Success 200 {object} helpers.APIResponse "data contains the updated photo"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/photos/{id} [put]
func (c *ContentController) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req PhotoRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdatePhoto(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeletePhoto godoc
// @Summary Delete a gallery photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/photos/{id} [delete]
func (c *ContentController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeletePhoto(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}
