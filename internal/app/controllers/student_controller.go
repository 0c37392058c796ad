package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placement/studentms/internal/app/models/dto"
	"github.com/placement/studentms/internal/app/services"
	"github.com/placement/studentms/internal/middleware"
	"github.com/placement/studentms/internal/pkg/helpers"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByEmail retrieves a student by email
// @Summary Get student by email
// @Tags students
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/email/{email} [get]
func (c *StudentController) GetStudentByEmail(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates an existing student
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Param id path int true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SearchStudents searches students by name or department
// @Summary Search students
// @Description Case-insensitive substring match over name and department; a blank keyword returns all students
// @Tags students
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		keyword = ctx.Query("q")
	}

	students, err := c.studentService.SearchStudents(ctx, keyword)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentsByDepartment lists students in a department
// @Summary List students by department
// @Tags students
// @Produce json
// @Param department path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students/department/{department} [get]
func (c *StudentController) GetStudentsByDepartment(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsByDepartment(ctx, ctx.Param("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentsByYear lists students in an academic year
// @Summary List students by year
// @Tags students
// @Produce json
// @Param year path int true "Academic year (1-4)"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Router /students/year/{year} [get]
func (c *StudentController) GetStudentsByYear(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		errorDetail = errorDetail.WithDetails("Year must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	students, err := c.studentService.GetStudentsByYear(ctx, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentsPaged retrieves a sorted page of students
// @Summary Get students with pagination
// @Tags students
// @Produce json
// @Param page query int false "Zero-indexed page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(id)
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown sort field"
// @Router /students/paginated [get]
func (c *StudentController) GetStudentsPaged(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	sortBy := ctx.DefaultQuery("sortBy", services.DefaultSortField)
	direction := ctx.DefaultQuery("direction", "asc")

	result, err := c.studentService.GetStudentsPaged(ctx, page, size, sortBy, direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// SearchStudentsPaged retrieves a sorted page of students matching a keyword
// @Summary Search students with pagination
// @Description Case-insensitive substring match over name, department and email
// @Tags students
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param page query int false "Zero-indexed page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" default(id)
// @Param direction query string false "Sort direction (asc or desc)" default(asc)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown sort field"
// @Router /students/search/paginated [get]
func (c *StudentController) SearchStudentsPaged(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		keyword = ctx.Query("q")
	}
	page, size := helpers.ParsePaginationParams(ctx)
	sortBy := ctx.DefaultQuery("sortBy", services.DefaultSortField)
	direction := ctx.DefaultQuery("direction", "asc")

	result, err := c.studentService.SearchStudentsPaged(ctx, keyword, page, size, sortBy, direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetDepartments lists every department in use
// @Summary Get distinct departments
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /students/departments [get]
func (c *StudentController) GetDepartments(ctx *gin.Context) {
	departments, err := c.studentService.GetDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// CountByDepartment counts students in a department
// @Summary Count students in a department
// @Tags students
// @Produce json
// @Param department path string true "Department name"
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentCountResponse}
// @Router /students/count/department/{department} [get]
func (c *StudentController) CountByDepartment(ctx *gin.Context) {
	department := ctx.Param("department")

	count, err := c.studentService.CountStudentsByDepartment(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DepartmentCountResponse{
			Department: department,
			Count:      count,
		},
		Timestamp: time.Now(),
	})
}

// parseIDParam extracts and validates the numeric id path parameter
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
