package repositories

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
	"github.com/kaan/stucomas/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}

// wrapDBError classifies failures the named-constraint checks did not claim.
// Lost connections surface as ErrStorageUnavailable, constraint violations
// no repository recognized as ErrConstraintViolation, everything else is
// wrapped as-is.
func wrapDBError(op string, err error) error {
	if dberrors.IsConnectionError(err) {
		return apperrors.NewCustomError(apperrors.ErrStorageUnavailable,
			fmt.Sprintf("error %s: storage unavailable", op))
	}
	if dberrors.IsConstraintViolation(err) {
		return apperrors.NewCustomError(apperrors.ErrConstraintViolation,
			fmt.Sprintf("error %s: %s", op, err.Error()))
	}
	return fmt.Errorf("error %s: %w", op, err)
}
