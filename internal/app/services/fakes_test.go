package services_test

import (
	"context"
	"sort"
	"strings"

	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/app/services"
	"github.com/kaan/stucomas/internal/pkg/apperrors"
)

// fakeStore is an in-memory stand-in for the repository layer. It mirrors
// the schema's constraints: unique emails, the (code, instructor) course
// uniqueness, the enrollment composite key, the grade range check, and the
// delete cascades from students and courses onto enrollments.
type fakeStore struct {
	students    map[int64]*models.Student
	instructors map[int64]*models.Instructor
	courses     map[int64]*models.Course
	enrollments map[[2]int64]*models.Enrollment

	nextStudentID    int64
	nextInstructorID int64
	nextCourseID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:    make(map[int64]*models.Student),
		instructors: make(map[int64]*models.Instructor),
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[[2]int64]*models.Enrollment),
	}
}

// fakeStudentRepo adapts fakeStore to services.StudentRepository.
type fakeStudentRepo struct{ store *fakeStore }

// fakeInstructorRepo adapts fakeStore to services.InstructorRepository.
type fakeInstructorRepo struct{ store *fakeStore }

// fakeCourseRepo adapts fakeStore to services.CourseRepository.
type fakeCourseRepo struct{ store *fakeStore }

// fakeEnrollmentRepo adapts fakeStore to services.EnrollmentRepository.
type fakeEnrollmentRepo struct{ store *fakeStore }

var (
	_ services.StudentRepository    = (*fakeStudentRepo)(nil)
	_ services.InstructorRepository = (*fakeInstructorRepo)(nil)
	_ services.CourseRepository     = (*fakeCourseRepo)(nil)
	_ services.EnrollmentRepository = (*fakeEnrollmentRepo)(nil)
)

// newTestServices builds all four services on top of a shared fake store.
func newTestServices() (*fakeStore, services.StudentService, services.InstructorService, services.CourseService, services.EnrollmentService) {
	store := newFakeStore()
	studentRepo := &fakeStudentRepo{store: store}
	instructorRepo := &fakeInstructorRepo{store: store}
	courseRepo := &fakeCourseRepo{store: store}
	enrollmentRepo := &fakeEnrollmentRepo{store: store}

	return store,
		services.NewStudentService(studentRepo),
		services.NewInstructorService(instructorRepo, courseRepo, enrollmentRepo),
		services.NewCourseService(courseRepo, instructorRepo),
		services.NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo)
}

func copyStudent(s *models.Student) *models.Student {
	c := *s
	return &c
}

func copyCourse(c *models.Course) *models.Course {
	cc := *c
	cc.Instructor = nil
	return &cc
}

func copyEnrollment(e *models.Enrollment) *models.Enrollment {
	c := *e
	if e.Grade != nil {
		g := *e.Grade
		c.Grade = &g
	}
	c.Student = nil
	c.Course = nil
	return &c
}

// --- students ---

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.store.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.store.nextStudentID++
	student.ID = r.store.nextStudentID
	r.store.students[student.ID] = copyStudent(student)
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := r.store.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return copyStudent(s), nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(r.store.students))
	for _, s := range r.store.students {
		students = append(students, copyStudent(s))
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (r *fakeStudentRepo) Search(_ context.Context, query string) ([]*models.Student, error) {
	q := strings.ToLower(query)
	var matched []*models.Student
	for _, s := range r.store.students {
		if strings.Contains(strings.ToLower(s.FirstName), q) ||
			strings.Contains(strings.ToLower(s.LastName), q) ||
			strings.Contains(strings.ToLower(s.Email), q) {
			matched = append(matched, copyStudent(s))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.store.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for id, s := range r.store.students {
		if id != student.ID && s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.store.students[student.ID] = copyStudent(student)
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.store.students, id)
	// ON DELETE CASCADE on enrollments.student_id
	for key := range r.store.enrollments {
		if key[0] == id {
			delete(r.store.enrollments, key)
		}
	}
	return nil
}

func (r *fakeStudentRepo) GetGradeReport(_ context.Context, id int64) ([]*models.GradeReportEntry, error) {
	var entries []*models.GradeReportEntry
	for key, e := range r.store.enrollments {
		if key[0] != id {
			continue
		}
		course, ok := r.store.courses[key[1]]
		if !ok {
			continue
		}
		entry := &models.GradeReportEntry{CourseTitle: course.Title}
		if e.Grade != nil {
			g := *e.Grade
			entry.Grade = &g
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CourseTitle < entries[j].CourseTitle })
	return entries, nil
}

// --- instructors ---

func (r *fakeInstructorRepo) Create(_ context.Context, instructor *models.Instructor) error {
	for _, i := range r.store.instructors {
		if i.Email == instructor.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.store.nextInstructorID++
	instructor.ID = r.store.nextInstructorID
	c := *instructor
	r.store.instructors[instructor.ID] = &c
	return nil
}

func (r *fakeInstructorRepo) GetByID(_ context.Context, id int64) (*models.Instructor, error) {
	i, ok := r.store.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	c := *i
	return &c, nil
}

func (r *fakeInstructorRepo) GetAll(_ context.Context) ([]*models.Instructor, error) {
	instructors := make([]*models.Instructor, 0, len(r.store.instructors))
	for _, i := range r.store.instructors {
		c := *i
		instructors = append(instructors, &c)
	}
	sort.Slice(instructors, func(i, j int) bool { return instructors[i].ID < instructors[j].ID })
	return instructors, nil
}

func (r *fakeInstructorRepo) Update(_ context.Context, instructor *models.Instructor) error {
	if _, ok := r.store.instructors[instructor.ID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	for id, i := range r.store.instructors {
		if id != instructor.ID && i.Email == instructor.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	c := *instructor
	r.store.instructors[instructor.ID] = &c
	return nil
}

func (r *fakeInstructorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.instructors[id]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	// courses.instructor_id has no cascade, the delete is blocked instead
	for _, course := range r.store.courses {
		if course.InstructorID == id {
			return apperrors.ErrInstructorHasCourses
		}
	}
	delete(r.store.instructors, id)
	return nil
}

// --- courses ---

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	if _, ok := r.store.instructors[course.InstructorID]; !ok {
		return apperrors.ErrInstructorNotFound
	}
	for _, c := range r.store.courses {
		if c.Code == course.Code && c.InstructorID == course.InstructorID {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	r.store.nextCourseID++
	course.ID = r.store.nextCourseID
	r.store.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.store.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return copyCourse(c), nil
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(r.store.courses))
	for _, c := range r.store.courses {
		courses = append(courses, copyCourse(c))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) Search(_ context.Context, query string) ([]*models.Course, error) {
	q := strings.ToLower(query)
	var matched []*models.Course
	for _, c := range r.store.courses {
		if strings.Contains(strings.ToLower(c.Code), q) ||
			strings.Contains(strings.ToLower(c.Title), q) {
			matched = append(matched, copyCourse(c))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *fakeCourseRepo) GetByInstructorID(_ context.Context, instructorID int64) ([]*models.Course, error) {
	var courses []*models.Course
	for _, c := range r.store.courses {
		if c.InstructorID == instructorID {
			courses = append(courses, copyCourse(c))
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Title < courses[j].Title })
	return courses, nil
}

func (r *fakeCourseRepo) GetEnrolledStudents(_ context.Context, courseID int64) ([]*models.Student, error) {
	var students []*models.Student
	for key := range r.store.enrollments {
		if key[1] != courseID {
			continue
		}
		if s, ok := r.store.students[key[0]]; ok {
			students = append(students, copyStudent(s))
		}
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].FirstName != students[j].FirstName {
			return students[i].FirstName < students[j].FirstName
		}
		return students[i].ID < students[j].ID
	})
	return students, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.store.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for id, c := range r.store.courses {
		if id != course.ID && c.Code == course.Code && c.InstructorID == course.InstructorID {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	r.store.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.store.courses, id)
	// ON DELETE CASCADE on enrollments.course_id
	for key := range r.store.enrollments {
		if key[1] == id {
			delete(r.store.enrollments, key)
		}
	}
	return nil
}

// --- enrollments ---

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := r.store.students[enrollment.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	if _, ok := r.store.courses[enrollment.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	key := [2]int64{enrollment.StudentID, enrollment.CourseID}
	if _, ok := r.store.enrollments[key]; ok {
		return apperrors.ErrAlreadyEnrolled
	}
	if enrollment.Grade != nil && !models.GradeInRange(*enrollment.Grade) {
		return apperrors.ErrGradeOutOfRange
	}
	r.store.enrollments[key] = copyEnrollment(enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) Get(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	e, ok := r.store.enrollments[[2]int64{studentID, courseID}]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return copyEnrollment(e), nil
}

func (r *fakeEnrollmentRepo) UpdateGrade(_ context.Context, studentID, courseID int64, grade int) error {
	if !models.GradeInRange(grade) {
		return apperrors.ErrGradeOutOfRange
	}
	e, ok := r.store.enrollments[[2]int64{studentID, courseID}]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	g := grade
	e.Grade = &g
	return nil
}

func (r *fakeEnrollmentRepo) UpsertGrade(_ context.Context, studentID, courseID int64, grade int) (*models.Enrollment, error) {
	if !models.GradeInRange(grade) {
		return nil, apperrors.ErrGradeOutOfRange
	}
	if _, ok := r.store.students[studentID]; !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if _, ok := r.store.courses[courseID]; !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	key := [2]int64{studentID, courseID}
	e, ok := r.store.enrollments[key]
	if !ok {
		e = &models.Enrollment{StudentID: studentID, CourseID: courseID}
		r.store.enrollments[key] = e
	}
	g := grade
	e.Grade = &g
	return copyEnrollment(e), nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, studentID, courseID int64) error {
	key := [2]int64{studentID, courseID}
	if _, ok := r.store.enrollments[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(r.store.enrollments, key)
	return nil
}

func (r *fakeEnrollmentRepo) GetAllDetailed(_ context.Context) ([]*models.Enrollment, error) {
	enrollments := make([]*models.Enrollment, 0, len(r.store.enrollments))
	for key, e := range r.store.enrollments {
		detailed := copyEnrollment(e)
		if s, ok := r.store.students[key[0]]; ok {
			detailed.Student = copyStudent(s)
		}
		if c, ok := r.store.courses[key[1]]; ok {
			detailed.Course = copyCourse(c)
		}
		enrollments = append(enrollments, detailed)
	}
	sort.Slice(enrollments, func(i, j int) bool {
		if enrollments[i].StudentID != enrollments[j].StudentID {
			return enrollments[i].StudentID < enrollments[j].StudentID
		}
		return enrollments[i].CourseID < enrollments[j].CourseID
	})
	return enrollments, nil
}
