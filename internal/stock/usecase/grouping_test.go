package usecase

import (
	"reflect"
	"testing"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
)

func item(productID, productName, sku string, qty int, status model.StockStatus) model.StockItem {
	return model.StockItem{
		VariantID:     sku + "-id",
		SKU:           sku,
		StockQuantity: qty,
		ProductID:     productID,
		ProductName:   productName,
		StockStatus:   status,
	}
}

func TestGroupStockItemsUrgencyOrder(t *testing.T) {
	items := []model.StockItem{
		item("p1", "Ao thun", "SKU-1", 5, model.StockStatusNormal),
		item("p1", "Ao thun", "SKU-2", 0, model.StockStatusOutOfStock),
		item("p2", "Quan jean", "SKU-3", 2, model.StockStatusLow),
	}

	groups := GroupStockItems(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	first := groups[0]
	if first.ProductID != "p1" {
		t.Fatalf("out-of-stock group must sort first, got %s", first.ProductID)
	}
	if !first.HasOutOfStock {
		t.Errorf("expected hasOutOfStock=true for p1")
	}
	if first.TotalStock != 5 {
		t.Errorf("expected totalStock 5 for p1, got %d", first.TotalStock)
	}
	if first.TotalVariants != 2 {
		t.Errorf("expected 2 variants for p1, got %d", first.TotalVariants)
	}

	second := groups[1]
	if second.ProductID != "p2" || !second.HasLowStock || second.HasOutOfStock {
		t.Errorf("unexpected second group %+v", second)
	}
}

func TestGroupStockItemsAggregatesMatchMembers(t *testing.T) {
	items := []model.StockItem{
		item("p1", "A", "S1", 3, model.StockStatusLow),
		item("p1", "A", "S2", 7, model.StockStatusNormal),
		item("p2", "B", "S3", 0, model.StockStatusOutOfStock),
		item("p2", "B", "S4", 12, model.StockStatusNormal),
	}

	for _, g := range GroupStockItems(items) {
		total := 0
		low, out := false, false
		for _, m := range g.Items {
			total += m.StockQuantity
			low = low || m.StockStatus == model.StockStatusLow
			out = out || m.StockStatus == model.StockStatusOutOfStock
		}
		if g.TotalStock != total {
			t.Errorf("group %s: totalStock %d drifted from member sum %d", g.ProductID, g.TotalStock, total)
		}
		if g.HasLowStock != low || g.HasOutOfStock != out {
			t.Errorf("group %s: flags drifted from members", g.ProductID)
		}
		if g.TotalVariants != len(g.Items) {
			t.Errorf("group %s: totalVariants %d != len(items) %d", g.ProductID, g.TotalVariants, len(g.Items))
		}
	}
}

func TestGroupStockItemsSentinelGroup(t *testing.T) {
	items := []model.StockItem{
		item("p1", "A", "S1", 1, model.StockStatusNormal),
		item("", "", "S2", 4, model.StockStatusNormal),
	}

	groups := GroupStockItems(items)
	if len(groups) != 2 {
		t.Fatalf("orphan item must not be dropped: expected 2 groups, got %d", len(groups))
	}

	var found bool
	for _, g := range groups {
		if g.ProductID == UnassignedGroupID {
			found = true
			if g.TotalVariants != 1 || g.TotalStock != 4 {
				t.Errorf("unexpected sentinel group %+v", g)
			}
		}
	}
	if !found {
		t.Fatalf("missing sentinel group for items without a product")
	}
}

func TestGroupStockItemsStableOrder(t *testing.T) {
	items := []model.StockItem{
		item("p1", "alpha", "S1", 1, model.StockStatusNormal),
		item("p2", "Alpha", "S2", 1, model.StockStatusNormal),
		item("p3", "beta", "S3", 0, model.StockStatusOutOfStock),
	}

	first := GroupStockItems(items)
	second := GroupStockItems(items)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-grouping the same input changed the order")
	}

	// Case-insensitive name tie keeps first-seen order.
	if first[0].ProductID != "p3" {
		t.Fatalf("out-of-stock group must sort first, got %s", first[0].ProductID)
	}
	if first[1].ProductID != "p1" || first[2].ProductID != "p2" {
		t.Fatalf("tied names must keep input order, got %s then %s", first[1].ProductID, first[2].ProductID)
	}
}

func TestPageGroups(t *testing.T) {
	items := []model.StockItem{
		item("p1", "a", "S1", 1, model.StockStatusNormal),
		item("p2", "b", "S2", 1, model.StockStatusNormal),
		item("p3", "c", "S3", 1, model.StockStatusNormal),
	}
	groups := GroupStockItems(items)

	page1 := PageGroups(groups, 1, 2)
	if len(page1) != 2 {
		t.Fatalf("expected 2 groups on page 1, got %d", len(page1))
	}
	page2 := PageGroups(groups, 2, 2)
	if len(page2) != 1 {
		t.Fatalf("expected 1 group on page 2, got %d", len(page2))
	}
	if page2[0].ProductID != groups[2].ProductID {
		t.Errorf("page 2 must continue where page 1 ended")
	}

	if got := PageGroups(groups, 5, 2); len(got) != 0 {
		t.Errorf("out-of-range page must be empty, got %d groups", len(got))
	}
	if got := PageGroups(groups, 1, 0); len(got) != len(groups) {
		t.Errorf("non-positive page size must return everything")
	}
}
