package usecase

import (
	"sort"
	"strings"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
)

// UnassignedGroupID collects items whose product identity is missing. They are
// grouped, never dropped, so the total item count survives the pass.
const UnassignedGroupID = "unassigned"

// GroupStockItems folds the flat stock projection into per-product groups in
// first-seen order, then sorts by restocking urgency: any out-of-stock variant
// first, any low-stock variant next, case-insensitive product name last.
//
// Group aggregates are computed here from the member list and nowhere else;
// the group carries no counters that can drift from its members.
func GroupStockItems(items []model.StockItem) []dto.ProductStockGroup {
	index := make(map[string]int)
	groups := make([]dto.ProductStockGroup, 0)

	for _, item := range items {
		key := item.ProductID
		name := item.ProductName
		if key == "" {
			key = UnassignedGroupID
			name = "Unassigned"
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.ProductStockGroup{
				ProductID:        key,
				ProductName:      name,
				ProductThumbnail: item.ProductThumbnail,
				CategoryName:     item.CategoryName,
				BrandName:        item.BrandName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	for i := range groups {
		g := &groups[i]
		g.TotalVariants = len(g.Items)
		g.TotalStock = 0
		g.HasLowStock = false
		g.HasOutOfStock = false
		for _, item := range g.Items {
			g.TotalStock += item.StockQuantity
			if item.StockStatus == model.StockStatusLow {
				g.HasLowStock = true
			}
			if item.StockStatus == model.StockStatusOutOfStock {
				g.HasOutOfStock = true
			}
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		if ga.HasOutOfStock != gb.HasOutOfStock {
			return ga.HasOutOfStock
		}
		if ga.HasLowStock != gb.HasLowStock {
			return ga.HasLowStock
		}
		return strings.ToLower(ga.ProductName) < strings.ToLower(gb.ProductName)
	})

	return groups
}

// PageGroups slices an already-grouped, already-sorted list. Changing the page
// never re-runs the grouping.
func PageGroups(groups []dto.ProductStockGroup, page, pageSize int) []dto.ProductStockGroup {
	if pageSize <= 0 {
		return groups
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(groups) {
		return []dto.ProductStockGroup{}
	}
	end := start + pageSize
	if end > len(groups) {
		end = len(groups)
	}
	return groups[start:end]
}
