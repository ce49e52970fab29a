package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/usecase/budget"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
	"github.com/krigzlist/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles daily budget endpoints.
type BudgetController struct {
	getStatusUseCase *budget.GetStatusUseCase
	setUseCase       *budget.SetBudgetUseCase
	removeUseCase    *budget.RemoveBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getStatusUseCase *budget.GetStatusUseCase,
	setUseCase *budget.SetBudgetUseCase,
	removeUseCase *budget.RemoveBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		getStatusUseCase: getStatusUseCase,
		setUseCase:       setUseCase,
		removeUseCase:    removeUseCase,
	}
}

// Get handles GET /budget requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	status, err := c.getStatusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget status",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}

// Set handles PUT /budget requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
		})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: budgetErr.Message,
				Code:  string(budgetErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(output.Status))
}

// Remove handles DELETE /budget requests.
func (c *BudgetController) Remove(ctx *gin.Context) {
	status, err := c.removeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to remove budget",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}
