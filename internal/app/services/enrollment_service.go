package services

import (
	"context"
	"fmt"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for enrollment-related operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	AssignGrade(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error)
	AssignGradeAsAdmin(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, studentID, courseID int64) error
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo EnrollmentRepository
	studentRepo    StudentRepository
	courseRepo     CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, studentRepo StudentRepository, courseRepo CourseRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func validatePair(studentID, courseID int64) error {
	if studentID <= 0 || courseID <= 0 {
		return fmt.Errorf("%w: invalid student or course ID", apperrors.ErrValidationFailed)
	}
	return nil
}

// Enroll creates a new ungraded enrollment for an existing student and
// course, and returns it with both entities attached.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if err := validatePair(studentID, courseID); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	enrollment.Student = student
	enrollment.Course = course
	return enrollment, nil
}

// GetEnrollment retrieves an enrollment by its composite key
func (s *enrollmentServiceImpl) GetEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if err := validatePair(studentID, courseID); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.Get(ctx, studentID, courseID)
}

// AssignGrade writes a grade onto an existing enrollment. Reassigning is
// always permitted; an out-of-range grade leaves the prior value untouched.
func (s *enrollmentServiceImpl) AssignGrade(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error) {
	if err := validatePair(studentID, courseID); err != nil {
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

// AssignGradeAsAdmin writes a grade, creating the enrollment first when the
// pair has none. Administrative override: no prior enrollment is required.
func (s *enrollmentServiceImpl) AssignGradeAsAdmin(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error) {
	if err := validatePair(studentID, courseID); err != nil {
		return nil, err
	}

	if !models.GradeInRange(grade) {
		return nil, apperrors.ErrGradeOutOfRange
	}

	return s.enrollmentRepo.UpsertGrade(ctx, studentID, courseID, grade)
}

// DeleteEnrollment removes an enrollment by its composite key
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, studentID, courseID int64) error {
	if err := validatePair(studentID, courseID); err != nil {
		return err
	}

	return s.enrollmentRepo.Delete(ctx, studentID, courseID)
}

// GetAllEnrollments retrieves every enrollment with student and course data
// attached.
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	return enrollments, nil
}
