package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placement/studentms/internal/app/models/dto"
	"github.com/placement/studentms/internal/app/services"
	"github.com/placement/studentms/internal/middleware"
)

// AuthController handles admin registration and login endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles admin registration
// @Summary Register an admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AdminResponse} "Admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admin, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// Login handles admin login
// @Summary Log in as an admin
// @Description An unknown username and a wrong password both answer 401
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AdminResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admin, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if admin == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      admin,
		Timestamp: time.Now(),
	})
}

// CheckUsername reports whether a username is taken
// @Summary Check username availability
// @Tags auth
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} dto.APIResponse{data=dto.UsernameCheckResponse}
// @Router /auth/check-username [get]
func (c *AuthController) CheckUsername(ctx *gin.Context) {
	username := ctx.Query("username")
	if username == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exists, err := c.authService.UsernameExists(ctx, username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.UsernameCheckResponse{Exists: exists},
		Timestamp: time.Now(),
	})
}
