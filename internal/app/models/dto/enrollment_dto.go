package dto

// CreateEnrollmentRequest represents an enrollment request
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0"`
	CourseID  int64 `json:"course_id" binding:"required,gt=0"`
}

// AssignGradeRequest carries the grade to write onto an enrollment.
// The 1..5 range is validated again in the service layer so that the
// query-parameter paths share the same check.
type AssignGradeRequest struct {
	Grade int `json:"grade" binding:"required"`
}
