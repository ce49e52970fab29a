package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krigzlist/backend/internal/domain/entity"
	"github.com/krigzlist/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the fixed category reference table.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToListCategoriesResponse(entity.Categories()))
}
