package services

import (
	"context"
	"fmt"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
	"github.com/kaan/stucomas/internal/pkg/validation"
)

// InstructorService defines the interface for instructor-related operations,
// including the instructor dashboard: course lists, rosters, and grading.
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) error
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error
	DeleteInstructor(ctx context.Context, id int64) error
	GetInstructorCourses(ctx context.Context, instructorID int64) ([]*models.Course, error)
	GetCourseStudents(ctx context.Context, instructorID, courseID int64) ([]*models.Student, error)
	AssignGrade(ctx context.Context, instructorID, courseID, studentID int64, grade int) (*models.Enrollment, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo InstructorRepository
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo InstructorRepository, courseRepo CourseRepository, enrollmentRepo EnrollmentRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// validateInstructor validates instructor data before database operations
func (s *instructorServiceImpl) validateInstructor(instructor *models.Instructor) error {
	if instructor == nil {
		return fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(instructor.FirstName) {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(instructor.LastName) {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidEmail(instructor.Email) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, instructor.Email)
	}

	return nil
}

// ownedCourse resolves a course and verifies it belongs to the instructor.
// A course owned by someone else is reported as not found, so callers cannot
// enumerate other instructors' course IDs.
func (s *instructorServiceImpl) ownedCourse(ctx context.Context, instructorID, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.InstructorID != instructorID {
		return nil, apperrors.ErrCourseNotFound
	}

	return course, nil
}

// CreateInstructor creates a new instructor
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := s.validateInstructor(instructor); err != nil {
		return err
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}
	return nil
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	return s.instructorRepo.GetByID(ctx, id)
}

// GetAllInstructors retrieves all instructors in insertion order
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	return instructors, nil
}

// UpdateInstructor overwrites the instructor's fields
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	if err := s.validateInstructor(instructor); err != nil {
		return err
	}

	return s.instructorRepo.Update(ctx, instructor)
}

// DeleteInstructor removes an instructor. Fails while the instructor still
// owns courses; course ownership must be reassigned or the courses deleted
// first.
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	return s.instructorRepo.Delete(ctx, id)
}

// GetInstructorCourses retrieves the instructor's courses ordered by title
func (s *instructorServiceImpl) GetInstructorCourses(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	if instructorID <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor courses: %w", err)
	}

	return courses, nil
}

// GetCourseStudents retrieves the roster of a course owned by the
// instructor, ordered by first name then id.
func (s *instructorServiceImpl) GetCourseStudents(ctx context.Context, instructorID, courseID int64) ([]*models.Student, error) {
	if instructorID <= 0 || courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor or course ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}

	students, err := s.courseRepo.GetEnrolledStudents(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course students: %w", err)
	}

	return students, nil
}

// AssignGrade writes a grade for a student in a course owned by the
// instructor. The ownership check runs before the enrollment lookup, and the
// grade range is validated before anything is written.
func (s *instructorServiceImpl) AssignGrade(ctx context.Context, instructorID, courseID, studentID int64, grade int) (*models.Enrollment, error) {
	if instructorID <= 0 || courseID <= 0 || studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid instructor, course, or student ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.ownedCourse(ctx, instructorID, courseID); err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.Get(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	if !models.GradeInRange(grade) {
		return nil, apperrors.ErrGradeOutOfRange
	}

	if err := s.enrollmentRepo.UpdateGrade(ctx, studentID, courseID, grade); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.Get(ctx, studentID, courseID)
}
