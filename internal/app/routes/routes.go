package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/placement/studentms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	authController *controllers.AuthController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/paginated", studentController.GetStudentsPaged)
		students.GET("/search/paginated", studentController.SearchStudentsPaged)
		students.GET("/departments", studentController.GetDepartments)
		students.GET("/email/:email", studentController.GetStudentByEmail)
		students.GET("/department/:department", studentController.GetStudentsByDepartment)
		students.GET("/count/department/:department", studentController.CountByDepartment)
		students.GET("/year/:year", studentController.GetStudentsByYear)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/check-username", authController.CheckUsername)
	}
}
