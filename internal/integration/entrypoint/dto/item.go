package dto

import (
	"github.com/krigzlist/backend/internal/application/usecase/item"
)

// CreateItemRequest represents the request body for adding an item.
type CreateItemRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Category string   `json:"category,omitempty"`
	Quantity int      `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty" binding:"omitempty,max=20"`
	Priority string   `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Notes    string   `json:"notes,omitempty" binding:"omitempty,max=500"`
	Price    *float64 `json:"price,omitempty"`
}

// UpdateItemRequest represents the request body for editing an item. Edits
// are full replacements of the mutable fields, matching the edit form.
type UpdateItemRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Category string   `json:"category,omitempty"`
	Quantity int      `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty" binding:"omitempty,max=20"`
	Priority string   `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Notes    string   `json:"notes,omitempty" binding:"omitempty,max=500"`
	Price    *float64 `json:"price,omitempty"`
}

// ItemResponse represents a single item in API responses.
type ItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Completed bool   `json:"completed"`
	Selected  bool   `json:"selected"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes,omitempty"`
	Price     string `json:"price,omitempty"`
	DateAdded string `json:"date_added"`
}

// CreateItemResponse represents the result of an addition attempt. When the
// budget gate refuses the addition, item is null and the confirmation fields
// explain what a confirmed retry would commit to.
type CreateItemResponse struct {
	Item                 *ItemResponse `json:"item,omitempty"`
	RequiresConfirmation bool          `json:"requires_confirmation,omitempty"`
	ProjectedOverage     string        `json:"projected_overage,omitempty"`
}

// CategoryGroupResponse represents one category section of the list view.
type CategoryGroupResponse struct {
	CategoryID   string         `json:"category_id"`
	CategoryName string         `json:"category_name"`
	Icon         string         `json:"icon"`
	Color        string         `json:"color"`
	Items        []ItemResponse `json:"items"`
}

// ListItemsResponse represents the grouped list view.
type ListItemsResponse struct {
	Groups         []CategoryGroupResponse `json:"groups"`
	TotalCount     int                     `json:"total_count"`
	CompletedCount int                     `json:"completed_count"`
	SelectionCount int                     `json:"selection_count"`
	SelectionMode  bool                    `json:"selection_mode"`
}

// ToggleItemResponse represents the result of a tap on an item row.
type ToggleItemResponse struct {
	Item       ItemResponse `json:"item"`
	Redirected bool         `json:"redirected"`
}

// ToggleSelectionResponse represents the selection state after a toggle.
type ToggleSelectionResponse struct {
	Selected       bool `json:"selected"`
	SelectionCount int  `json:"selection_count"`
}

// ToItemResponse converts a use case item output to its API form.
func ToItemResponse(out item.ItemOutput) ItemResponse {
	return ItemResponse{
		ID:        out.ID,
		Name:      out.Name,
		Category:  out.Category,
		Quantity:  out.Quantity,
		Unit:      out.Unit,
		Completed: out.Completed,
		Selected:  out.Selected,
		Priority:  out.Priority,
		Notes:     out.Notes,
		Price:     out.Price,
		DateAdded: out.DateAdded,
	}
}

// ToListItemsResponse converts the grouped list output to its API form.
func ToListItemsResponse(out *item.ListItemsOutput) ListItemsResponse {
	groups := make([]CategoryGroupResponse, 0, len(out.Groups))
	for _, g := range out.Groups {
		items := make([]ItemResponse, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, ToItemResponse(it))
		}
		groups = append(groups, CategoryGroupResponse{
			CategoryID:   g.CategoryID,
			CategoryName: g.CategoryName,
			Icon:         g.Icon,
			Color:        g.Color,
			Items:        items,
		})
	}
	return ListItemsResponse{
		Groups:         groups,
		TotalCount:     out.TotalCount,
		CompletedCount: out.CompletedCount,
		SelectionCount: out.SelectionCount,
		SelectionMode:  out.SelectionMode,
	}
}
