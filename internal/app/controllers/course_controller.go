package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/helpers"
)

// CourseController handles course search and CRUD
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// SearchCourses searches courses by one or more free-text terms with
// optional term and department filters.
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	terms := helpers.QueryArrayParam(ctx, "q")
	termID := ctx.Query("termId")
	dept := models.Department(ctx.Query("dept"))

	courses, err := c.courseService.SearchCourses(ctx.Request.Context(), terms, termID, dept)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course with its sections, term and change history.
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse creates a course stamped with the caller as creator.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse applies a partial update and records the change.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), actor, ctx.Param("courseId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course and everything under it in one transaction.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	result, err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
