package store

import "github.com/krigzlist/backend/internal/domain/entity"

// CategoryGroup is a slice of items sharing one category, in list order.
type CategoryGroup struct {
	Category entity.Category
	Items    []entity.Item
}

// GroupByCategory partitions items by category in the fixed category order,
// omitting categories with no items. Items whose category matches no known
// category are collected under the default category at its usual position.
func GroupByCategory(items []entity.Item) []CategoryGroup {
	fallback := entity.DefaultCategory()
	byName := make(map[string][]entity.Item, len(items))
	for _, item := range items {
		name := item.Category
		if _, ok := entity.CategoryByName(name); !ok {
			name = fallback.Name
		}
		byName[name] = append(byName[name], item)
	}

	groups := make([]CategoryGroup, 0, len(byName))
	for _, category := range entity.Categories() {
		members, ok := byName[category.Name]
		if !ok {
			continue
		}
		groups = append(groups, CategoryGroup{Category: category, Items: members})
	}
	return groups
}
