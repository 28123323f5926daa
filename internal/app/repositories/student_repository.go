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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and assigns its id.
// The unique index on email is the arbiter for concurrent creates: exactly
// one of two racing inserts with the same email succeeds.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, student.FirstName, student.LastName, student.Email).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return wrapDBError("creating student", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, wrapDBError("retrieving student", err)
	}

	return &student, nil
}

// GetAll retrieves all students in insertion order
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("listing students", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Search retrieves students whose first name, last name, or email contains
// the query as a case-insensitive substring.
func (r *StudentRepository) Search(ctx context.Context, search string) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM students
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, wrapDBError("searching students", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update overwrites the student's fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return wrapDBError("updating student", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student. Enrollments cascade at the schema level.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)

	if err != nil {
		return wrapDBError("deleting student", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetGradeReport returns (course title, grade) pairs for every enrollment of
// the student, ordered by course title.
func (r *StudentRepository) GetGradeReport(ctx context.Context, id int64) ([]*models.GradeReportEntry, error) {
	query := `
		SELECT c.title, e.grade
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY c.title
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, wrapDBError("retrieving grade report", err)
	}
	defer rows.Close()

	var report []*models.GradeReportEntry
	for rows.Next() {
		var entry models.GradeReportEntry
		if err := rows.Scan(&entry.CourseTitle, &entry.Grade); err != nil {
			return nil, wrapDBError("reading grade report", err)
		}
		report = append(report, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError("reading grade report", err)
	}

	return report, nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
		); err != nil {
			return nil, wrapDBError("reading students", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError("reading students", err)
	}

	return students, nil
}
