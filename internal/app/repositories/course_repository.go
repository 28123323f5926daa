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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and assigns its id.
// The (code, instructor_id) unique constraint arbitrates concurrent creates.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, title, credits, instructor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Title, course.Credits, course.InstructorID).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_course_instructor") {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "courses_instructor_id_fkey") {
			return apperrors.ErrInstructorNotFound
		}
		return wrapDBError("creating course", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, code, title, credits, instructor_id
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.Credits,
		&course.InstructorID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, wrapDBError("retrieving course", err)
	}

	return &course, nil
}

// GetAll retrieves all courses in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, code, title, credits, instructor_id
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("listing courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Search retrieves courses whose code or title contains the query as a
// case-insensitive substring.
func (r *CourseRepository) Search(ctx context.Context, search string) ([]*models.Course, error) {
	query := `
		SELECT id, code, title, credits, instructor_id
		FROM courses
		WHERE code ILIKE '%' || $1 || '%'
		   OR title ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, wrapDBError("searching courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByInstructorID retrieves the instructor's courses ordered by title
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	query := `
		SELECT id, code, title, credits, instructor_id
		FROM courses
		WHERE instructor_id = $1
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, wrapDBError("listing instructor courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetEnrolledStudents retrieves the students enrolled in a course, ordered by
// first name and then id for ties.
func (r *CourseRepository) GetEnrolledStudents(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.email
		FROM students s
		JOIN enrollments e ON e.student_id = s.id
		WHERE e.course_id = $1
		ORDER BY s.first_name, s.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, wrapDBError("listing enrolled students", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update overwrites the course's fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, credits = $3, instructor_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.Credits, course.InstructorID, course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_course_instructor") {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "courses_instructor_id_fkey") {
			return apperrors.ErrInstructorNotFound
		}
		return wrapDBError("updating course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. Enrollments cascade at the schema level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)

	if err != nil {
		return wrapDBError("deleting course", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Title,
			&course.Credits,
			&course.InstructorID,
		); err != nil {
			return nil, wrapDBError("reading courses", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError("reading courses", err)
	}

	return courses, nil
}
