package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"littlemaestros/internal/domain"
)

type catalogService struct {
	classRepo      domain.ClassRepository
	locationRepo   domain.LocationRepository
	teacherRepo    domain.TeacherRepository
	contextTimeout time.Duration
}

// NewCatalogService creates a CatalogService over the class, location, and
// teacher repositories.
func NewCatalogService(classRepo domain.ClassRepository,
	locationRepo domain.LocationRepository,
	teacherRepo domain.TeacherRepository,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		classRepo:      classRepo,
		locationRepo:   locationRepo,
		teacherRepo:    teacherRepo,
		contextTimeout: timeout,
	}
}

func (s *catalogService) ListClasses(ctx context.Context) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	if classes == nil {
		classes = []*domain.Class{}
	}
	return classes, nil
}

func (s *catalogService) CreateClass(ctx context.Context, class *domain.Class) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if class.Title == "" {
		return domain.ErrInvalidInput
	}
	if err := s.classRepo.Create(ctx, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateClass(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if class.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.classRepo.Update(ctx, class); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update class: %w", err)
	}
	return class, nil
}

func (s *catalogService) DeleteClass(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.classRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}

func (s *catalogService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	if locations == nil {
		locations = []*domain.Location{}
	}
	return locations, nil
}

func (s *catalogService) CreateLocation(ctx context.Context, location *domain.Location) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if location.Name == "" || location.Address == "" {
		return domain.ErrInvalidInput
	}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if location.Name == "" || location.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.locationRepo.Update(ctx, location); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update location: %w", err)
	}
	return location, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

func (s *catalogService) ListTeachers(ctx context.Context) ([]*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	if teachers == nil {
		teachers = []*domain.Teacher{}
	}
	return teachers, nil
}

func (s *catalogService) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if teacher.Name == "" {
		return domain.ErrInvalidInput
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateTeacher(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if teacher.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	return teacher, nil
}

func (s *catalogService) DeleteTeacher(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete teacher: %w", err)
	}
	return nil
}
