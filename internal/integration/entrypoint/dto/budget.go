package dto

import (
	"github.com/krigzlist/backend/internal/application/usecase/budget"
)

// SetBudgetRequest represents the request body for setting the daily budget.
type SetBudgetRequest struct {
	Amount float64 `json:"amount"`
}

// BudgetStatusResponse represents the budget progress header.
type BudgetStatusResponse struct {
	DailyBudget string `json:"daily_budget"`
	TotalSpent  string `json:"total_spent"`
	Remaining   string `json:"remaining"`
	OverBudget  bool   `json:"over_budget"`
	PercentUsed string `json:"percent_used"`
	HasBudget   bool   `json:"has_budget"`
}

// ToBudgetStatusResponse converts the status output to its API form.
func ToBudgetStatusResponse(status *budget.StatusOutput) BudgetStatusResponse {
	return BudgetStatusResponse{
		DailyBudget: status.DailyBudget.StringFixed(2),
		TotalSpent:  status.TotalSpent.StringFixed(2),
		Remaining:   status.Remaining.StringFixed(2),
		OverBudget:  status.OverBudget,
		PercentUsed: status.PercentUsed.String(),
		HasBudget:   status.DailyBudget.IsPositive(),
	}
}
