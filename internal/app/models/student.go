package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	FirstName string `json:"firstName" db:"first_name" example:"Alice"`
	LastName  string `json:"lastName" db:"last_name" example:"Wonder"`
	Email     string `json:"email" db:"email" example:"alice@example.com"` // Unique across all students
}

// GradeReportEntry is one row of a student's grade report.
type GradeReportEntry struct {
	CourseTitle string `json:"course" db:"title" example:"Intro to CS"`
	Grade       *int   `json:"grade" db:"grade" example:"1"` // nil while ungraded
}
