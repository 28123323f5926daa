package models

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	FirstName  string  `json:"firstName" db:"first_name" example:"Jane"`
	LastName   string  `json:"lastName" db:"last_name" example:"Doe"`
	Email      string  `json:"email" db:"email" example:"jane.doe@example.com"` // Unique across all instructors
	Department *string `json:"department,omitempty" db:"department"`            // Nullable
}
