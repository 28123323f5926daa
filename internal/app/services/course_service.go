package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
	"github.com/kaan/stucomas/internal/pkg/validation"
)

// DefaultCredits is the credit value used when a course is created without one.
const DefaultCredits = 3

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	SearchCourses(ctx context.Context, query string) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     CourseRepository
	instructorRepo InstructorRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, instructorRepo InstructorRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidCourseCode(course.Code) {
		return fmt.Errorf("%w: code must be letters followed by digits", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.Credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", apperrors.ErrValidationFailed)
	}

	if course.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor ID must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course for an existing instructor
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if course != nil && course.Credits == 0 {
		course.Credits = DefaultCredits
	}

	if err := s.validateCourse(course); err != nil {
		return err
	}

	// Verify the instructor exists so a missing reference surfaces as a
	// not-found rather than a bare constraint failure. The foreign key
	// still backs this up against a concurrent instructor delete.
	instructor, err := s.instructorRepo.GetByID(ctx, course.InstructorID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return err
	}

	course.Instructor = instructor
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Attach instructor details when available
	if instructor, err := s.instructorRepo.GetByID(ctx, course.InstructorID); err == nil {
		course.Instructor = instructor
	}

	return course, nil
}

// GetAllCourses retrieves all courses in insertion order
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// SearchCourses retrieves courses matching the query as a case-insensitive
// substring of their code or title.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, query string) ([]*models.Course, error) {
	courses, err := s.courseRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse overwrites the course's fields
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := s.validateCourse(course); err != nil {
		return err
	}

	if _, err := s.instructorRepo.GetByID(ctx, course.InstructorID); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse removes a course and, through the schema cascade, all of its
// enrollments.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Delete(ctx, id)
}
