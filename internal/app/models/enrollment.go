package models

// Grade scale bounds. The scale is inverted: 1 is the best grade, 5 is a fail.
const (
	GradeBest = 1
	GradeFail = 5
)

// Enrollment links one student to one course and optionally carries a grade.
// Identity is the composite (student_id, course_id) pair.
type Enrollment struct {
	StudentID int64 `json:"studentId" db:"student_id"`
	CourseID  int64 `json:"courseId" db:"course_id"`
	Grade     *int  `json:"grade" db:"grade"` // nil until assigned, then 1..5

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// GradeInRange reports whether g is a valid grade on the 1..5 scale.
func GradeInRange(g int) bool {
	return g >= GradeBest && g <= GradeFail
}
