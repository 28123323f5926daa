package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaan/stucomas/internal/app/controllers"
	"github.com/kaan/stucomas/internal/app/models"
	"github.com/kaan/stucomas/internal/app/models/dto"
	"github.com/kaan/stucomas/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	adminController *controllers.AdminController,
) {
	// --- Student routes ---
	students := router.Group("/students")
	{
		students.POST("/", studentController.CreateStudent)
		students.GET("/", studentController.GetAllStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/grades", studentController.GetGradeReport)
	}

	// --- Instructor routes ---
	instructors := router.Group("/instructors")
	{
		instructors.POST("/", instructorController.CreateInstructor)
		instructors.GET("/", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
		instructors.GET("/:id/courses", instructorController.GetInstructorCourses)
		instructors.GET("/:id/courses/:courseId/students", instructorController.GetCourseStudents)

		// Grading accepts an optional X-Role header; when present it must
		// claim the instructor role.
		grading := instructors.Group("")
		grading.Use(middleware.RoleHeader(string(models.RoleInstructor)))
		{
			grading.PUT("/:id/courses/:courseId/students/:studentId/grade", instructorController.AssignGrade)
		}
	}

	// --- Course routes ---
	courses := router.Group("/courses")
	{
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/", courseController.GetAllCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// --- Enrollment routes ---
	enrollments := router.Group("/enrollments")
	{
		enrollments.POST("/", enrollmentController.Enroll)
		enrollments.GET("/", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:studentId/:courseId", enrollmentController.GetEnrollment)
		enrollments.PUT("/:studentId/:courseId", enrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:studentId/:courseId", enrollmentController.DeleteEnrollment)
		enrollments.PUT("/:studentId/:courseId/grade", enrollmentController.AssignGrade)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	admin.Use(middleware.RoleHeader(string(models.RoleAdmin)))
	{
		admin.GET("/enrollments", adminController.GetAllEnrollments)
		admin.PUT("/students/:studentId/courses/:courseId/grade", adminController.AssignGrade)
	}

	// Root welcome route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Welcome to the StuCoMaS API"})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
