package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
	"github.com/dpetrov/campusreg/internal/pkg/validation"
)

// UserController handles mock-user signup, email lookup and the account
// endpoint
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser registers a self-service mock account.
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.CreateMockUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// FindUsers looks up users by exact email match.
func (c *UserController) FindUsers(ctx *gin.Context) {
	email := ctx.Query("email")
	if !validation.IsValidEmail(email) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email query")
		errorDetail = errorDetail.WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	users, err := c.userService.FindUsersByEmail(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetAccount returns the authenticated caller's own record.
func (c *UserController) GetAccount(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
