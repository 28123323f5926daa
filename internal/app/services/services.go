package services

import (
	"context"

	"github.com/kaan/stucomas/internal/app/models"
)

// Services defined in this package:
// - StudentService: student records and grade reports
// - InstructorService: instructor records and the instructor dashboard
// - CourseService: course records and search
// - EnrollmentService: enrollments, grading, and the admin override

// StudentRepository is the data access surface the services need for students.
// Implemented by repositories.StudentRepository.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, query string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetGradeReport(ctx context.Context, id int64) ([]*models.GradeReportEntry, error)
}

// InstructorRepository is the data access surface for instructors.
// Implemented by repositories.InstructorRepository.
type InstructorRepository interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository is the data access surface for courses.
// Implemented by repositories.CourseRepository.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Search(ctx context.Context, query string) ([]*models.Course, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*models.Course, error)
	GetEnrolledStudents(ctx context.Context, courseID int64) ([]*models.Student, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository is the data access surface for enrollments.
// Implemented by repositories.EnrollmentRepository.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Get(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, studentID, courseID int64, grade int) error
	UpsertGrade(ctx context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error)
	Delete(ctx context.Context, studentID, courseID int64) error
	GetAllDetailed(ctx context.Context) ([]*models.Enrollment, error)
}
