package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// SectionController handles course section CRUD
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// CreateSection adds a section under a course.
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	section, err := c.sectionService.CreateSection(ctx.Request.Context(), actor, ctx.Param("courseId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// GetSection retrieves a section with its instructors and parent course.
func (c *SectionController) GetSection(ctx *gin.Context) {
	section, err := c.sectionService.GetSection(ctx.Request.Context(), ctx.Param("sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// UpdateSection replaces a section's capacity, meetings and instructors.
// Responds 201, matching the behavior clients already depend on.
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	section, err := c.sectionService.UpdateSection(ctx.Request.Context(), actor, ctx.Param("sectionId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, section)
}

// DeleteSection removes a section and its registrations in one transaction.
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	result, err := c.sectionService.DeleteSection(ctx.Request.Context(), ctx.Param("sectionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
