package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krigzlist/backend/internal/application/usecase/suggestion"
	"github.com/krigzlist/backend/internal/integration/entrypoint/dto"
)

// SuggestionController handles quick-add suggestion endpoints.
type SuggestionController struct {
	listUseCase    *suggestion.ListSuggestionsUseCase
	resolveUseCase *suggestion.ResolveCategoryUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(
	listUseCase *suggestion.ListSuggestionsUseCase,
	resolveUseCase *suggestion.ResolveCategoryUseCase,
) *SuggestionController {
	return &SuggestionController{
		listUseCase:    listUseCase,
		resolveUseCase: resolveUseCase,
	}
}

// List handles GET /suggestions requests.
func (c *SuggestionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), suggestion.ListSuggestionsInput{
		Query: ctx.Query("q"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suggestions",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToListSuggestionsResponse(output))
}

// Resolve handles POST /suggestions/resolve requests.
func (c *SuggestionController) Resolve(ctx *gin.Context) {
	var req dto.ResolveCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.resolveUseCase.Execute(ctx.Request.Context(), suggestion.ResolveCategoryInput{
		Text: req.Text,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to resolve category",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ResolveCategoryResponse{
		Category: dto.ToCategoryResponse(output.Category),
		Source:   output.Source,
	})
}
