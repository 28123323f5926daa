package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/models/dto"
	"github.com/kaan/stucomas/internal/app/services"
	"github.com/kaan/stucomas/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// parsePairParams parses the studentId/courseId path parameters.
func parsePairParams(ctx *gin.Context) (studentID, courseID int64, ok bool) {
	studentID, ok = parseIDParam(ctx, "studentId")
	if !ok {
		return 0, 0, false
	}
	courseID, ok = parseIDParam(ctx, "courseId")
	if !ok {
		return 0, 0, false
	}
	return studentID, courseID, true
}

// Enroll enrolls a student into a course
// @Summary Enroll a student
// @Description Creates an ungraded enrollment for an existing student and course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// GetAllEnrollments retrieves every enrollment with student and course data
// @Summary Get all enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// GetEnrollment retrieves an enrollment by its composite key
// @Summary Get an enrollment
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// UpdateEnrollment overwrites an enrollment's grade
// @Summary Update an enrollment
// @Description The grade is the only mutable enrollment attribute
// @Tags enrollments
// @Accept json
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Param request body dto.AssignGradeRequest true "Grade (1..5, 1 is best)"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	c.assignGrade(ctx)
}

// AssignGrade writes a grade onto an enrollment
// @Summary Assign a grade
// @Tags enrollments
// @Accept json
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Param request body dto.AssignGradeRequest true "Grade (1..5, 1 is best)"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId}/grade [put]
func (c *EnrollmentController) AssignGrade(ctx *gin.Context) {
	c.assignGrade(ctx)
}

func (c *EnrollmentController) assignGrade(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	var req dto.AssignGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.AssignGrade(ctx, studentID, courseID, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{studentId}/{courseId} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrollment deleted successfully"},
		Timestamp: time.Now(),
	})
}
