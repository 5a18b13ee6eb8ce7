package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// RegistrationController handles self-service registration, priority
// updates and the roster view
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Register enrolls the caller in a section, rejecting a second
// registration anywhere in the same course.
func (c *RegistrationController) Register(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	registration, err := c.registrationService.Register(ctx.Request.Context(), caller, ctx.Param("sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// Deregister removes the caller's registrations in a section.
func (c *RegistrationController) Deregister(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	count, err := c.registrationService.Deregister(ctx.Request.Context(), caller, ctx.Param("sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCountResponse{Count: count})
}

// UpdateRegistration sets the priority flag on a registration. Responds
// 201, matching the behavior clients already depend on.
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	var req dto.UpdateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	registration, err := c.registrationService.SetPriority(ctx.Request.Context(), ctx.Param("registrationId"), *req.Priority)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// GetRoster splits a section's registrations into enrolled students and
// the waitlist.
func (c *RegistrationController) GetRoster(ctx *gin.Context) {
	roster, err := c.registrationService.GetRoster(ctx.Request.Context(), ctx.Param("sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roster)
}
