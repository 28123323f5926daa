package services_test

import (
	"context"
	"testing"

	"github.com/qawatake/fixify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()
	instructor := newInstructor(t, instructorService, "doe@example.edu")

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	enrollment, err := enrollmentService.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, enrollment.StudentID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Nil(t, enrollment.Grade)
	require.NotNil(t, enrollment.Student)
	require.NotNil(t, enrollment.Course)
	assert.Equal(t, "Alice", enrollment.Student.FirstName)
	assert.Equal(t, "CS101", enrollment.Course.Code)
}

func TestEnroll_Duplicate(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()
	instructor := newInstructor(t, instructorService, "doe@example.edu")

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	_, err := enrollmentService.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	_, err = enrollmentService.Enroll(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnroll_MissingReferences(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()
	instructor := newInstructor(t, instructorService, "doe@example.edu")

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	t.Run("unknown student", func(t *testing.T) {
		_, err := enrollmentService.Enroll(ctx, 42, course.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := enrollmentService.Enroll(ctx, student.ID, 42)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestAssignGrade_NotEnrolled(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, enrollmentService := newTestServices()

	_, err := enrollmentService.AssignGrade(ctx, 1, 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestAssignGradeAsAdmin(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()
	instructor := newInstructor(t, instructorService, "doe@example.edu")

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	t.Run("creates the enrollment when the pair has none", func(t *testing.T) {
		enrollment, err := enrollmentService.AssignGradeAsAdmin(ctx, student.ID, course.ID, 4)
		require.NoError(t, err)
		require.NotNil(t, enrollment.Grade)
		assert.Equal(t, 4, *enrollment.Grade)
	})

	t.Run("overwrites an existing grade", func(t *testing.T) {
		enrollment, err := enrollmentService.AssignGradeAsAdmin(ctx, student.ID, course.ID, 1)
		require.NoError(t, err)
		require.NotNil(t, enrollment.Grade)
		assert.Equal(t, 1, *enrollment.Grade)
	})

	t.Run("range is still enforced", func(t *testing.T) {
		_, err := enrollmentService.AssignGradeAsAdmin(ctx, student.ID, course.ID, 0)
		assert.ErrorIs(t, err, apperrors.ErrGradeOutOfRange)

		current, err := enrollmentService.GetEnrollment(ctx, student.ID, course.ID)
		require.NoError(t, err)
		require.NotNil(t, current.Grade)
		assert.Equal(t, 1, *current.Grade)
	})
}

func TestDeleteEnrollment(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()
	instructor := newInstructor(t, instructorService, "doe@example.edu")

	course := &models.Course{Code: "CS101", Title: "Intro", InstructorID: instructor.ID}
	require.NoError(t, courseService.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Alice", LastName: "Smith", Email: "alice@example.edu"}
	require.NoError(t, studentService.CreateStudent(ctx, student))

	_, err := enrollmentService.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, enrollmentService.DeleteEnrollment(ctx, student.ID, course.ID))

	err = enrollmentService.DeleteEnrollment(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

// Fixture constructors for the scenario test below. Enrollments connect to
// both a student and a course parent.

func studentFixture(firstName, lastName, email string) *fixify.Model[models.Student] {
	return fixify.NewModel(&models.Student{FirstName: firstName, LastName: lastName, Email: email})
}

func instructorFixture(email string) *fixify.Model[models.Instructor] {
	return fixify.NewModel(&models.Instructor{FirstName: "John", LastName: "Doe", Email: email})
}

func courseFixture(code, title string) *fixify.Model[models.Course] {
	return fixify.NewModel(&models.Course{Code: code, Title: title},
		fixify.ConnectorFunc(func(_ testing.TB, course *models.Course, instructor *models.Instructor) {
			course.InstructorID = instructor.ID
		}),
	)
}

func enrollmentFixture() *fixify.Model[models.Enrollment] {
	return fixify.NewModel(&models.Enrollment{},
		fixify.ConnectorFunc(func(_ testing.TB, enrollment *models.Enrollment, student *models.Student) {
			enrollment.StudentID = student.ID
		}),
		fixify.ConnectorFunc(func(_ testing.TB, enrollment *models.Enrollment, course *models.Course) {
			enrollment.CourseID = course.ID
		}),
	)
}

// TestInstructorDashboardScenario walks the whole flow end to end: build a
// small department via fixtures, grade part of the roster, and read it all
// back through the dashboard and report endpoints.
func TestInstructorDashboardScenario(t *testing.T) {
	ctx := context.Background()
	_, studentService, instructorService, courseService, enrollmentService := newTestServices()

	// Each enrollment has two parents, the student and the course
	var aliceIntro, aliceAlgo, bobIntro *fixify.Model[models.Enrollment]

	alice := studentFixture("Alice", "Smith", "alice@example.edu")
	bob := studentFixture("Bob", "Jones", "bob@example.edu")
	intro := courseFixture("CS101", "Intro to Programming")
	algorithms := courseFixture("CS201", "Algorithms")

	f := fixify.New(t,
		instructorFixture("doe@example.edu").With(intro, algorithms),
		alice.With(
			enrollmentFixture().Bind(&aliceIntro),
			enrollmentFixture().Bind(&aliceAlgo),
		),
		bob.With(
			enrollmentFixture().Bind(&bobIntro),
		),
		intro.With(aliceIntro, bobIntro),
		algorithms.With(aliceAlgo),
	)

	// Persist each fixture model through the services in dependency order
	f.Apply(func(model any) error {
		switch v := model.(type) {
		case *models.Instructor:
			return instructorService.CreateInstructor(ctx, v)
		case *models.Course:
			return courseService.CreateCourse(ctx, v)
		case *models.Student:
			return studentService.CreateStudent(ctx, v)
		case *models.Enrollment:
			_, err := enrollmentService.Enroll(ctx, v.StudentID, v.CourseID)
			return err
		}
		return nil
	})

	instructors, err := instructorService.GetAllInstructors(ctx)
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	doe := instructors[0]

	courses, err := instructorService.GetInstructorCourses(ctx, doe.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Algorithms", courses[0].Title)
	assert.Equal(t, "Intro to Programming", courses[1].Title)

	introRoster, err := instructorService.GetCourseStudents(ctx, doe.ID, intro.Value().ID)
	require.NoError(t, err)
	require.Len(t, introRoster, 2)
	assert.Equal(t, "Alice", introRoster[0].FirstName)
	assert.Equal(t, "Bob", introRoster[1].FirstName)

	// Grade Alice in both courses, leave Bob ungraded
	_, err = instructorService.AssignGrade(ctx, doe.ID, intro.Value().ID, alice.Value().ID, 1)
	require.NoError(t, err)
	_, err = instructorService.AssignGrade(ctx, doe.ID, algorithms.Value().ID, alice.Value().ID, 2)
	require.NoError(t, err)

	report, err := studentService.GetGradeReport(ctx, alice.Value().ID)
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "Algorithms", report[0].CourseTitle)
	require.NotNil(t, report[0].Grade)
	assert.Equal(t, 2, *report[0].Grade)
	assert.Equal(t, "Intro to Programming", report[1].CourseTitle)
	require.NotNil(t, report[1].Grade)
	assert.Equal(t, 1, *report[1].Grade)

	bobReport, err := studentService.GetGradeReport(ctx, bob.Value().ID)
	require.NoError(t, err)
	require.Len(t, bobReport, 1)
	assert.Nil(t, bobReport[0].Grade)

	all, err := enrollmentService.GetAllEnrollments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
