package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
	"github.com/kaan/stucomas/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment with no grade. The composite primary key
// arbitrates concurrent enrollments of the same pair, and the foreign keys
// reject references to missing students or courses.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, grade)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, enrollment.StudentID, enrollment.CourseID, enrollment.Grade)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_pkey") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_student_id_fkey") {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		if dberrors.IsCheckViolation(err, "check_grade_range") {
			return apperrors.ErrGradeOutOfRange
		}
		return wrapDBError("creating enrollment", err)
	}

	return nil
}

// Get retrieves an enrollment by its composite key
func (r *EnrollmentRepository) Get(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	query := `
		SELECT student_id, course_id, grade
		FROM enrollments
		WHERE student_id = $1 AND course_id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, wrapDBError("retrieving enrollment", err)
	}

	return &enrollment, nil
}

// UpdateGrade writes the grade onto an existing enrollment. The grade range
// CHECK constraint backs up the service-level validation in the same
// statement as the write.
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, studentID, courseID int64, grade int) error {
	query := `
		UPDATE enrollments
		SET grade = $1
		WHERE student_id = $2 AND course_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade, studentID, courseID)
	if err != nil {
		if dberrors.IsCheckViolation(err, "check_grade_range") {
			return apperrors.ErrGradeOutOfRange
		}
		return wrapDBError("updating grade", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// UpsertGrade creates the enrollment if it does not exist and writes the
// grade, in one atomic statement. Administrative override path.
func (r *EnrollmentRepository) UpsertGrade(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (student_id, course_id, grade)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT enrollments_pkey
		DO UPDATE SET grade = EXCLUDED.grade
		RETURNING student_id, course_id, grade
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, studentID, courseID, grade).Scan(
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Grade,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "enrollments_student_id_fkey") {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsCheckViolation(err, "check_grade_range") {
			return nil, apperrors.ErrGradeOutOfRange
		}
		return nil, wrapDBError("upserting grade", err)
	}

	return &enrollment, nil
}

// Delete removes an enrollment by its composite key
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	query := `DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, studentID, courseID)

	if err != nil {
		return wrapDBError("deleting enrollment", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetAllDetailed retrieves every enrollment with its student and course
// attached, ordered by the composite key.
func (r *EnrollmentRepository) GetAllDetailed(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT e.student_id, e.course_id, e.grade,
		       s.id, s.first_name, s.last_name, s.email,
		       c.id, c.code, c.title, c.credits, c.instructor_id
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		ORDER BY e.student_id, e.course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("listing enrollments", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var student models.Student
		var course models.Course
		if err := rows.Scan(
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.Grade,
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&course.ID,
			&course.Code,
			&course.Title,
			&course.Credits,
			&course.InstructorID,
		); err != nil {
			return nil, wrapDBError("reading enrollments", err)
		}
		enrollment.Student = &student
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError("reading enrollments", err)
	}

	return enrollments, nil
}
