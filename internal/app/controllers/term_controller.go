package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
)

// TermController handles academic term CRUD
type TermController struct {
	termService *services.TermService
}

// NewTermController creates a new TermController
func NewTermController(termService *services.TermService) *TermController {
	return &TermController{
		termService: termService,
	}
}

// GetAllTerms lists every term, newest start first.
func (c *TermController) GetAllTerms(ctx *gin.Context) {
	terms, err := c.termService.GetAllTerms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, terms)
}

// GetCurrentTerm returns the term whose interval contains the current time.
func (c *TermController) GetCurrentTerm(ctx *gin.Context) {
	term, err := c.termService.GetCurrentTerm(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, term)
}

// GetTermByID retrieves a single term.
func (c *TermController) GetTermByID(ctx *gin.Context) {
	term, err := c.termService.GetTermByID(ctx.Request.Context(), ctx.Param("termId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, term)
}

// CreateTerm creates a new term after season, ordering and overlap checks.
func (c *TermController) CreateTerm(ctx *gin.Context) {
	var req dto.CreateTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid term data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	term, err := c.termService.CreateTerm(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, term)
}

// UpdateTerm applies a partial update, re-running the same checks.
func (c *TermController) UpdateTerm(ctx *gin.Context) {
	var req dto.UpdateTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid term data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	term, err := c.termService.UpdateTerm(ctx.Request.Context(), ctx.Param("termId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, term)
}

// DeleteTerm removes a term and echoes the deleted record.
func (c *TermController) DeleteTerm(ctx *gin.Context) {
	term, err := c.termService.DeleteTerm(ctx.Request.Context(), ctx.Param("termId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteTermResponse{
		Message: "Term deleted",
		Term:    term,
	})
}
