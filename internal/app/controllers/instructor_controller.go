package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/app/models/dto"
	"github.com/kaan/stucomas/internal/app/services"
	"github.com/kaan/stucomas/internal/middleware"
)

// InstructorController handles instructor-related operations, including the
// instructor dashboard endpoints.
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=models.Instructor}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor := &models.Instructor{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := c.instructorService.CreateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// GetAllInstructors retrieves all instructors
// @Summary Get all instructors
// @Tags instructors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor}
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructors,
		Timestamp: time.Now(),
	})
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor by ID
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=models.Instructor}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// UpdateInstructor overwrites an existing instructor
// @Summary Update an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Updated instructor information"
// @Success 200 {object} dto.APIResponse{data=models.Instructor}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor := &models.Instructor{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := c.instructorService.UpdateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      instructor,
		Timestamp: time.Now(),
	})
}

// DeleteInstructor deletes an instructor without courses
// @Summary Delete an instructor
// @Description Fails with a conflict while the instructor still owns courses
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 409 {object} dto.ErrorResponse "Instructor has assigned courses"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Instructor " + strconv.FormatInt(id, 10) + " deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetInstructorCourses lists the instructor's courses
// @Summary List an instructor's courses
// @Description Courses owned by the instructor, ordered by title
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id}/courses [get]
func (c *InstructorController) GetInstructorCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.instructorService.GetInstructorCourses(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseStudents lists the roster of a course owned by the instructor
// @Summary List students in an instructor's course
// @Description Enrolled students ordered by first name then id; the course must belong to the instructor
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 404 {object} dto.ErrorResponse "Course not found for this instructor"
// @Router /instructors/{id}/courses/{courseId}/students [get]
func (c *InstructorController) GetCourseStudents(ctx *gin.Context) {
	instructorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	students, err := c.instructorService.GetCourseStudents(ctx, instructorID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// AssignGrade writes a grade for a student in the instructor's course
// @Summary Assign a grade as instructor
// @Description Grade passed via the grade query parameter; the course must belong to the instructor and the student must be enrolled
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Param courseId path int true "Course ID"
// @Param studentId path int true "Student ID"
// @Param grade query int true "Grade (1..5, 1 is best)"
// @Param X-Role header string false "Caller role; must be instructor when present"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Failure 403 {object} dto.ErrorResponse "Role header mismatch"
// @Failure 404 {object} dto.ErrorResponse "Course or enrollment not found"
// @Router /instructors/{id}/courses/{courseId}/students/{studentId}/grade [put]
func (c *InstructorController) AssignGrade(ctx *gin.Context) {
	instructorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
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

	enrollment, err := c.instructorService.AssignGrade(ctx, instructorID, courseID, studentID, grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}
