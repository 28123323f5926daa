package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
	"github.com/kaan/stucomas/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	SearchStudents(ctx context.Context, query string) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	GetGradeReport(ctx context.Context, id int64) ([]*models.GradeReportEntry, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(student.FirstName) {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidName(student.LastName) {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidEmail(student.Email) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, student.Email)
	}

	return nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	student.Email = strings.TrimSpace(student.Email)

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents retrieves all students in insertion order
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// SearchStudents retrieves students matching the query as a case-insensitive
// substring of their first name, last name, or email.
func (s *studentServiceImpl) SearchStudents(ctx context.Context, query string) ([]*models.Student, error) {
	students, err := s.studentRepo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}

	return students, nil
}

// UpdateStudent overwrites the student's fields
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student.ID <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return err
	}
	return nil
}

// DeleteStudent removes a student and, through the schema cascade, all of
// the student's enrollments.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// GetGradeReport returns the student's (course title, grade) pairs
func (s *studentServiceImpl) GetGradeReport(ctx context.Context, id int64) ([]*models.GradeReportEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	// Distinguish a missing student from one with no enrollments
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	report, err := s.studentRepo.GetGradeReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade report: %w", err)
	}

	return report, nil
}
