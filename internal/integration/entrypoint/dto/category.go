package dto

import (
	"github.com/krigzlist/backend/internal/domain/entity"
)

// CategoryResponse represents one entry of the fixed category table.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ListCategoriesResponse represents the full category table.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a category entity to its API form.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}

// ToListCategoriesResponse converts the category table to its API form.
func ToListCategoriesResponse(categories []entity.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return ListCategoriesResponse{Categories: out}
}
