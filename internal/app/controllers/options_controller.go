package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dpetrov/campusreg/internal/app/services"
)

// OptionsController serves the static form-option catalog
type OptionsController struct {
	optionsService *services.OptionsService
}

// NewOptionsController creates a new OptionsController
func NewOptionsController(optionsService *services.OptionsService) *OptionsController {
	return &OptionsController{
		optionsService: optionsService,
	}
}

// GetOptions returns every selectable enumeration with display labels.
func (c *OptionsController) GetOptions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.optionsService.GetOptions())
}
