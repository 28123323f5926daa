package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/kaan/stucomas/internal/db"
)

// CreateDemoData inserts a small demo dataset: one instructor with a course
// and two graded students. Everything runs in a single transaction and the
// whole seed is skipped when the demo instructor already exists, so restarts
// are idempotent.
func CreateDemoData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	const demoInstructorEmail = "john.doe@example.edu"

	var exists bool
	err := database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE email = $1)`, demoInstructorEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for existing demo data: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Demo data already present, skipping seed")
		return nil
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var instructorID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO instructors (first_name, last_name, email, department)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			"John", "Doe", demoInstructorEmail, "Computer Science").Scan(&instructorID)
		if err != nil {
			return fmt.Errorf("failed to insert demo instructor: %w", err)
		}

		var courseID int64
		err = tx.QueryRow(ctx,
			`INSERT INTO courses (code, title, credits, instructor_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			"CS101", "Introduction to Computer Science", 3, instructorID).Scan(&courseID)
		if err != nil {
			return fmt.Errorf("failed to insert demo course: %w", err)
		}

		students := []struct {
			firstName string
			lastName  string
			email     string
			grade     int
		}{
			{"Alice", "Smith", "alice.smith@example.edu", 1},
			{"Bob", "Jones", "bob.jones@example.edu", 2},
		}

		for _, s := range students {
			var studentID int64
			err = tx.QueryRow(ctx,
				`INSERT INTO students (first_name, last_name, email)
				 VALUES ($1, $2, $3) RETURNING id`,
				s.firstName, s.lastName, s.email).Scan(&studentID)
			if err != nil {
				return fmt.Errorf("failed to insert demo student %s: %w", s.email, err)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO enrollments (student_id, course_id, grade)
				 VALUES ($1, $2, $3)`,
				studentID, courseID, s.grade)
			if err != nil {
				return fmt.Errorf("failed to enroll demo student %s: %w", s.email, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Demo data created")
	return nil
}
