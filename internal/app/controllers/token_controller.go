package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/middleware"
)

// TokenController handles bearer-token issuance for mock accounts
type TokenController struct {
	userService *services.UserService
}

// NewTokenController creates a new TokenController
func NewTokenController(userService *services.UserService) *TokenController {
	return &TokenController{
		userService: userService,
	}
}

// CreateToken issues a signed bearer token for the mock account matching
// the supplied email. The raw token is the response body.
func (c *TokenController) CreateToken(ctx *gin.Context) {
	var req dto.CreateTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.userService.IssueToken(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusCreated, token)
}
