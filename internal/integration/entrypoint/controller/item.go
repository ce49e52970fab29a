// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/usecase/item"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
	"github.com/krigzlist/backend/internal/integration/entrypoint/dto"
)

// ItemController handles shopping list item endpoints.
type ItemController struct {
	listUseCase              *item.ListItemsUseCase
	addUseCase               *item.AddItemUseCase
	editUseCase              *item.EditItemUseCase
	toggleUseCase            *item.ToggleItemUseCase
	toggleSelectionUseCase   *item.ToggleSelectionUseCase
	clearSelectionUseCase    *item.ClearSelectionUseCase
	deleteUseCase            *item.DeleteItemUseCase
	deleteSelectedUseCase    *item.DeleteSelectedUseCase
	clearAllUseCase          *item.ClearAllUseCase
	markAllIncompleteUseCase *item.MarkAllIncompleteUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	listUseCase *item.ListItemsUseCase,
	addUseCase *item.AddItemUseCase,
	editUseCase *item.EditItemUseCase,
	toggleUseCase *item.ToggleItemUseCase,
	toggleSelectionUseCase *item.ToggleSelectionUseCase,
	clearSelectionUseCase *item.ClearSelectionUseCase,
	deleteUseCase *item.DeleteItemUseCase,
	deleteSelectedUseCase *item.DeleteSelectedUseCase,
	clearAllUseCase *item.ClearAllUseCase,
	markAllIncompleteUseCase *item.MarkAllIncompleteUseCase,
) *ItemController {
	return &ItemController{
		listUseCase:              listUseCase,
		addUseCase:               addUseCase,
		editUseCase:              editUseCase,
		toggleUseCase:            toggleUseCase,
		toggleSelectionUseCase:   toggleSelectionUseCase,
		clearSelectionUseCase:    clearSelectionUseCase,
		deleteUseCase:            deleteUseCase,
		deleteSelectedUseCase:    deleteSelectedUseCase,
		clearAllUseCase:          clearAllUseCase,
		markAllIncompleteUseCase: markAllIncompleteUseCase,
	}
}

// List handles GET /items requests.
func (c *ItemController) List(ctx *gin.Context) {
	input := item.ListItemsInput{
		Query: ctx.Query("search"),
		// The list shows completed items unless explicitly hidden.
		ShowCompleted: ctx.Query("showCompleted") != "false",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListItemsResponse(output))
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeItemNameRequired),
		})
		return
	}

	input := item.AddItemInput{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Priority:  req.Priority,
		Notes:     req.Notes,
		Price:     priceFromRequest(req.Price),
		Confirmed: ctx.Query("confirm") == "true",
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	if output.RequiresConfirmation {
		ctx.JSON(http.StatusConflict, dto.CreateItemResponse{
			RequiresConfirmation: true,
			ProjectedOverage:     output.ProjectedOverage.StringFixed(2),
		})
		return
	}

	response := dto.ToItemResponse(*output.Item)
	ctx.JSON(http.StatusCreated, dto.CreateItemResponse{Item: &response})
}

// Update handles PUT /items/:id requests.
func (c *ItemController) Update(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeItemNameRequired),
		})
		return
	}

	input := item.EditItemInput{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Priority: req.Priority,
		Notes:    req.Notes,
		Price:    priceFromRequest(req.Price),
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(*output.Item))
}

// Toggle handles POST /items/:id/toggle requests, the tap on an item row.
func (c *ItemController) Toggle(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), item.ToggleItemInput{ID: id})
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleItemResponse{
		Item:       dto.ToItemResponse(*output.Item),
		Redirected: output.Redirected,
	})
}

// ToggleSelection handles POST /items/:id/select requests.
func (c *ItemController) ToggleSelection(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	output, err := c.toggleSelectionUseCase.Execute(ctx.Request.Context(), item.ToggleSelectionInput{ID: id})
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleSelectionResponse{
		Selected:       output.Selected,
		SelectionCount: output.SelectionCount,
	})
}

// ClearSelection handles POST /items/selection/clear requests.
func (c *ItemController) ClearSelection(ctx *gin.Context) {
	if err := c.clearSelectionUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear selection",
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /items/:id requests.
func (c *ItemController) Delete(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), item.DeleteItemInput{ID: id}); err != nil {
		c.handleItemError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteSelected handles DELETE /items/selection requests.
func (c *ItemController) DeleteSelected(ctx *gin.Context) {
	output, err := c.deleteSelectedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete selected items",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Deleted})
}

// ClearAll handles DELETE /items requests.
func (c *ItemController) ClearAll(ctx *gin.Context) {
	output, err := c.clearAllUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear the list",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Deleted})
}

// MarkAllIncomplete handles POST /items/mark-all-incomplete requests.
func (c *ItemController) MarkAllIncomplete(ctx *gin.Context) {
	output, err := c.markAllIncompleteUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to reset completion flags",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Changed})
}

// handleItemError maps domain errors to HTTP responses.
func (c *ItemController) handleItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		status := http.StatusBadRequest
		if itemErr.Code == domainerror.ErrCodeItemNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// parseItemID parses the :id path parameter, answering 400 on failure.
func parseItemID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// priceFromRequest converts an optional request price to a decimal, keeping
// "absent" as zero which the domain treats as unpriced.
func priceFromRequest(price *float64) decimal.Decimal {
	if price == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*price)
}
