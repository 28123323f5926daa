package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/models/dto"
	"github.com/kaan/stucomas/internal/app/services"
	"github.com/kaan/stucomas/internal/middleware"
)

// AdminController handles the administrative dashboard operations
type AdminController struct {
	enrollmentService services.EnrollmentService
}

// NewAdminController creates a new AdminController
func NewAdminController(enrollmentService services.EnrollmentService) *AdminController {
	return &AdminController{
		enrollmentService: enrollmentService,
	}
}

// GetAllEnrollments retrieves every enrollment with student and course data
// @Summary List all enrollments (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Router /admin/enrollments [get]
func (c *AdminController) GetAllEnrollments(ctx *gin.Context) {
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

// AssignGrade writes a grade, creating the enrollment if it does not exist
// @Summary Assign or override a grade (admin)
// @Description Creates the enrollment when the pair has none, then writes the grade
// @Tags admin
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Param grade query int true "Grade (1..5, 1 is best)"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Router /admin/students/{studentId}/courses/{courseId}/grade [put]
func (c *AdminController) AssignGrade(ctx *gin.Context) {
	studentID, courseID, ok := parsePairParams(ctx)
	if !ok {
		return
	}

	grade, err := strconv.Atoi(ctx.Query("grade"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade")
		errorDetail = errorDetail.WithDetails("grade must be an integer query parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.AssignGradeAsAdmin(ctx, studentID, courseID, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}
