package dto

import (
	"github.com/krigzlist/backend/internal/application/usecase/report"
)

// TrendBucketResponse represents a single bar of the trends chart.
type TrendBucketResponse struct {
	Label  string `json:"label"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Value  string `json:"value"`
	Budget string `json:"budget"`
}

// TrendsResponse represents the trends chart data.
type TrendsResponse struct {
	Timeframe    string                `json:"timeframe"`
	Buckets      []TrendBucketResponse `json:"buckets"`
	MaxAxisValue string                `json:"max_axis_value"`
	DailyBudget  string                `json:"daily_budget"`
}

// BreakdownEntryResponse represents one slice of the category breakdown.
type BreakdownEntryResponse struct {
	CategoryName string `json:"category_name"`
	Color        string `json:"color"`
	Value        string `json:"value"`
	Percentage   string `json:"percentage"`
	ItemCount    int    `json:"item_count"`
}

// BreakdownResponse represents the category spending breakdown.
type BreakdownResponse struct {
	TotalSpent string                   `json:"total_spent"`
	Entries    []BreakdownEntryResponse `json:"entries"`
}

// SummaryResponse represents the headline statistics for the list.
type SummaryResponse struct {
	TotalItems     int    `json:"total_items"`
	CompletedItems int    `json:"completed_items"`
	PricedItems    int    `json:"priced_items"`
	TotalSpent     string `json:"total_spent"`
	AveragePrice   string `json:"average_price"`
	DailyBudget    string `json:"daily_budget"`
	OverBudget     bool   `json:"over_budget"`
	TopCategory    string `json:"top_category,omitempty"`
}

// ToTrendsResponse converts the trends output to its API form.
func ToTrendsResponse(out *report.GetSpendingTrendsOutput) TrendsResponse {
	buckets := make([]TrendBucketResponse, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		buckets = append(buckets, TrendBucketResponse{
			Label:  b.Label,
			Start:  b.Start.Format("2006-01-02"),
			End:    b.End.Format("2006-01-02"),
			Value:  b.Value.StringFixed(2),
			Budget: b.Budget.StringFixed(2),
		})
	}
	return TrendsResponse{
		Timeframe:    string(out.Timeframe),
		Buckets:      buckets,
		MaxAxisValue: out.MaxAxisValue.StringFixed(2),
		DailyBudget:  out.DailyBudget.StringFixed(2),
	}
}

// ToBreakdownResponse converts the breakdown output to its API form.
func ToBreakdownResponse(out *report.GetCategoryBreakdownOutput) BreakdownResponse {
	entries := make([]BreakdownEntryResponse, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, BreakdownEntryResponse{
			CategoryName: e.CategoryName,
			Color:        e.Color,
			Value:        e.Value.StringFixed(2),
			Percentage:   e.Percentage.String(),
			ItemCount:    e.ItemCount,
		})
	}
	return BreakdownResponse{
		TotalSpent: out.TotalSpent.StringFixed(2),
		Entries:    entries,
	}
}

// ToSummaryResponse converts the summary output to its API form.
func ToSummaryResponse(out *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalItems:     out.TotalItems,
		CompletedItems: out.CompletedItems,
		PricedItems:    out.PricedItems,
		TotalSpent:     out.TotalSpent.StringFixed(2),
		AveragePrice:   out.AveragePrice.StringFixed(2),
		DailyBudget:    out.DailyBudget.StringFixed(2),
		OverBudget:     out.OverBudget,
		TopCategory:    out.TopCategory,
	}
}
