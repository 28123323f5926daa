package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))
	assert.Equal(t, int64(1), student.ID)

	got, err := studentService.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice@example.edu", got.Email)
}

func TestCreateStudent_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	first := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, first))

	// Same email, different name: still rejected
	second := &models.Student{FirstName: "Alicia", LastName: "Smythe", Email: "alice@example.edu"}
	err := studentService.CreateStudent(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	all, err := studentService.GetAllStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateStudent_InvalidInput(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	tests := []struct {
		name    string
		student *models.Student
		wantErr error
	}{
		{
			name:    "empty first name",
			student: &models.Student{FirstName: "", LastName: "Smith", Email: "a@example.edu"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "empty last name",
			student: &models.Student{FirstName: "Alice", LastName: "", Email: "a@example.edu"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			student: &models.Student{FirstName: "Alice", LastName: "Smith", Email: "not-an-email"},
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name:    "empty email",
			student: &models.Student{FirstName: "Alice", LastName: "Smith", Email: ""},
			wantErr: apperrors.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := studentService.CreateStudent(ctx, tt.student)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetStudentByID_NotFound(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	_, err := studentService.GetStudentByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetAllStudents_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	names := []string{"Charlie", "Alice", "Bob"}
	for _, name := range names {
		student := &models.Student{FirstName: name, LastName: "Test", Email: name + "@example.edu"}
		require.NoError(t, studentService.CreateStudent(ctx, student))
	}

	all, err := studentService.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Listed in insertion order, not alphabetically
	assert.Equal(t, "Charlie", all[0].FirstName)
	assert.Equal(t, "Alice", all[1].FirstName)
	assert.Equal(t, "Bob", all[2].FirstName)
}

func TestSearchStudents(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	students := []*models.Student{
		{FirstName: "Alice", LastName: "Smith", Email: "alice.smith@example.edu"},
		{FirstName: "Bob", LastName: "Smithers", Email: "bob@example.edu"},
		{FirstName: "Carol", LastName: "Jones", Email: "carol@other.edu"},
	}
	for _, s := range students {
		require.NoError(t, studentService.CreateStudent(ctx, s))
	}

	t.Run("substring of last name, case-insensitive", func(t *testing.T) {
		got, err := studentService.SearchStudents(ctx, "sMiTh")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("substring of email", func(t *testing.T) {
		got, err := studentService.SearchStudents(ctx, "other.edu")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Carol", got[0].FirstName)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		got, err := studentService.SearchStudents(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	student.LastName = "Johnson"
	student.Email = "alice.johnson@example.edu"
	require.NoError(t, studentService.UpdateStudent(ctx, student))

	got, err := studentService.GetStudentByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johnson", got.LastName)
	assert.Equal(t, "alice.johnson@example.edu", got.Email)
}

func TestUpdateStudent_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	alice := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	bob := &models.Student{FirstName: "Bob", LastName: "Jones", Email: "bob@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, alice))
	require.NoError(t, studentService.CreateStudent(ctx, bob))

	bob.Email = "alice@example.edu"
	err := studentService.UpdateStudent(ctx, bob)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeleteStudent_CascadesEnrollments(t *testing.T) {
	ctx := context.Background()
	store, studentService, instructorService, courseService, enrollmentService := newTestServices()

	instructor := &models.Instructor{FirstName: "John", LastName: "Doe", Email: "doe@example.edu"}
	require.NoError(t, instructorService.CreateInstructor(ctx, instructor))

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	_, err := enrollmentService.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, studentService.DeleteStudent(ctx, student.ID))

	// Enrollment goes with the student
	assert.Empty(t, store.enrollments)
	_, err = enrollmentService.GetEnrollment(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestDeleteStudent_NotFound(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	err := studentService.DeleteStudent(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetGradeReport(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()

	instructor := &models.Instructor{FirstName: "John", LastName: "Doe", Email: "doe@example.edu"}
	require.NoError(t, instructorService.CreateInstructor(ctx, instructor))

	algorithms := &models.Course{Code: "CS201", Title: "Algorithms", InstructorID: instructor.ID}
	databases := &models.Course{Code: "CS301", Title: "Databases", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, algorithms))
	require.NoError(t, courseService.CreateCourse(ctx, databases))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	_, err := enrollmentService.Enroll(ctx, student.ID, algorithms.ID)
	require.NoError(t, err)
	_, err = enrollmentService.Enroll(ctx, student.ID, databases.ID)
	require.NoError(t, err)

	_, err = enrollmentService.AssignGrade(ctx, student.ID, algorithms.ID, 2)
	require.NoError(t, err)

	report, err := studentService.GetGradeReport(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, report, 2)

	// Ordered by course title; ungraded courses appear with a nil grade
	assert.Equal(t, "Algorithms", report[0].CourseTitle)
	require.NotNil(t, report[0].Grade)
	assert.Equal(t, 2, *report[0].Grade)
	assert.Equal(t, "Databases", report[1].CourseTitle)
	assert.Nil(t, report[1].Grade)
}

func TestGetGradeReport_StudentNotFound(t *testing.T) {
	ctx := context.Background()
	_, studentService, _, _, _ := newTestServices()

	_, err := studentService.GetGradeReport(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
