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

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

// Create inserts a new instructor and assigns its id
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (first_name, last_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		instructor.FirstName, instructor.LastName, instructor.Email, instructor.Department).Scan(&instructor.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return wrapDBError("creating instructor", err)
	}

	return nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, email, department
		FROM instructors
		WHERE id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.LastName,
		&instructor.Email,
		&instructor.Department,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, wrapDBError("retrieving instructor", err)
	}

	return &instructor, nil
}

// GetAll retrieves all instructors in insertion order
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	query := `
		SELECT id, first_name, last_name, email, department
		FROM instructors
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("listing instructors", err)
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(
			&instructor.ID,
			&instructor.FirstName,
			&instructor.LastName,
			&instructor.Email,
			&instructor.Department,
		); err != nil {
			return nil, wrapDBError("reading instructors", err)
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError("reading instructors", err)
	}

	return instructors, nil
}

// Update overwrites the instructor's fields
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET first_name = $1, last_name = $2, email = $3, department = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.FirstName, instructor.LastName, instructor.Email, instructor.Department, instructor.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return wrapDBError("updating instructor", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor. Courses do not cascade; the foreign key on
// courses.instructor_id rejects the delete while the instructor still owns
// courses, which keeps the check and the delete atomic.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM instructors WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "courses_instructor_id_fkey") {
			return apperrors.ErrInstructorHasCourses
		}
		return wrapDBError("deleting instructor", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}
