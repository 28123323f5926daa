package dto

// CreateInstructorRequest represents instructor creation data
type CreateInstructorRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Department *string `json:"department,omitempty"`
}

// UpdateInstructorRequest represents a full overwrite of an instructor's fields
type UpdateInstructorRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Department *string `json:"department,omitempty"`
}
