package dto

// CreateCourseRequest represents course creation data.
// Credits defaults to 3 when omitted.
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Credits      *int   `json:"credits,omitempty" binding:"omitempty,gt=0"`
	InstructorID int64  `json:"instructor_id" binding:"required,gt=0"`
}

// UpdateCourseRequest represents a full overwrite of a course's fields
type UpdateCourseRequest struct {
	Code         string `json:"code" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Credits      int    `json:"credits" binding:"required,gt=0"`
	InstructorID int64  `json:"instructor_id" binding:"required,gt=0"`
}
