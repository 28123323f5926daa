package models

// Course represents a course offered by an instructor.
// The pair (code, instructor_id) is unique: the same instructor cannot
// offer two courses with the same code.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Code         string `json:"code" db:"code"`
	Title        string `json:"title" db:"title"`
	Credits      int    `json:"credits" db:"credits"` // Positive, defaults to 3
	InstructorID int64  `json:"instructorId" db:"instructor_id"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
}
