package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "littlemaestros/internal/delivery/http/helpers"
	"littlemaestros/internal/domain"
)

// DeleteResponse is the body returned by all admin delete endpoints.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ClassRequest is the request body for creating and updating a class.
type ClassRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AgeRange    string  `json:"ageRange"`
	Duration    string  `json:"duration"`
	Price       int     `json:"price"`
	ImageURL    *string `json:"imageUrl"`
}

// Validate implements Validator.
func (c ClassRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Price < 0 {
		errs = append(errs, "price must not be negative")
	}
	return errs
}

func (c ClassRequest) toDomain(id int64) *domain.Class {
	return &domain.Class{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		AgeRange:    c.AgeRange,
		Duration:    c.Duration,
		Price:       c.Price,
		ImageURL:    c.ImageURL,
	}
}

// LocationRequest is the request body for creating and updating a location.
type LocationRequest struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Validate implements Validator.
func (l LocationRequest) Validate() []string {
	var errs []string
	if l.Name == "" {
		errs = append(errs, "name is required")
	}
	if l.Address == "" {
		errs = append(errs, "address is required")
	}
	if l.Lat != nil && (*l.Lat < -90 || *l.Lat > 90) {
		errs = append(errs, "lat must be between -90 and 90")
	}
	if l.Lng != nil && (*l.Lng < -180 || *l.Lng > 180) {
		errs = append(errs, "lng must be between -180 and 180")
	}
	return errs
}

func (l LocationRequest) toDomain(id int64) *domain.Location {
	return &domain.Location{
		ID:      id,
		Name:    l.Name,
		Address: l.Address,
		Lat:     l.Lat,
		Lng:     l.Lng,
	}
}

// TeacherRequest is the request body for creating and updating a teacher.
type TeacherRequest struct {
	Name         string  `json:"name"`
	Bio          string  `json:"bio"`
	ImageURL     *string `json:"imageUrl"`
	Active       *bool   `json:"active"`
	DisplayOrder int     `json:"displayOrder"`
}

// Validate implements Validator.
func (t TeacherRequest) Validate() []string {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

func (t TeacherRequest) toDomain(id int64) *domain.Teacher {
	active := true
	if t.Active != nil {
		active = *t.Active
	}
	return &domain.Teacher{
		ID:           id,
		Name:         t.Name,
		Bio:          t.Bio,
		ImageURL:     t.ImageURL,
		Active:       active,
		DisplayOrder: t.DisplayOrder,
	}
}

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *CatalogController) fail(w http.ResponseWriter, r *http.Request, err error) {
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

// ListClasses godoc
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the class list"
// @Router /api/classes [get]
func (c *CatalogController) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := c.Service.ListClasses(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, classes)
}

// CreateClass godoc
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param class body ClassRequest true "Class data"
// @Success 201 {object} helpers.APIResponse "data contains the created class"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/classes [post]
func (c *CatalogController) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req ClassRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	class := req.toDomain(0)
	if err := c.Service.CreateClass(r.Context(), class); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, class)
}

// UpdateClass godoc
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param class body ClassRequest true "Class data"
// @Success 200 {object} helpers.APIResponse "data contains the updated class"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/classes/{id} [put]
func (c *CatalogController) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req ClassRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateClass(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/classes/{id} [delete]
func (c *CatalogController) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteClass(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}

// ListLocations godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the location list"
// @Router /api/locations [get]
func (c *CatalogController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Service.ListLocations(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body LocationRequest true "Location data"
// @Success 201 {object} helpers.APIResponse "data contains the created location"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/locations [post]
func (c *CatalogController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	location := req.toDomain(0)
	if err := c.Service.CreateLocation(r.Context(), location); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, location)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param location body LocationRequest true "Location data"
// @Success 200 {object} helpers.APIResponse "data contains the updated location"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/locations/{id} [put]
func (c *CatalogController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req LocationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateLocation(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/locations/{id} [delete]
func (c *CatalogController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteLocation(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}

// ListTeachers godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the teacher list"
// @Router /api/teachers [get]
func (c *CatalogController) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := c.Service.ListTeachers(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, teachers)
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacher body TeacherRequest true "Teacher data"
// @Success 201 {object} helpers.APIResponse "data contains the created teacher"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/admin/teachers [post]
func (c *CatalogController) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req TeacherRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	teacher := req.toDomain(0)
	if err := c.Service.CreateTeacher(r.Context(), teacher); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, teacher)
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param teacher body TeacherRequest true "Teacher data"
// @Success 200 {object} helpers.APIResponse "data contains the updated teacher"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/teachers/{id} [put]
func (c *CatalogController) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	var req TeacherRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.UpdateTeacher(r.Context(), req.toDomain(id))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} helpers.APIResponse "data contains {success: true}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/admin/teachers/{id} [delete]
func (c *CatalogController) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteTeacher(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteResponse{Success: true})
}
