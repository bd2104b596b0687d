package usecase

import (
	"math"
	"testing"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

func TestReconcileClosingBalance(t *testing.T) {
	rows := []dto.VariantMovementRecord{{
		SKU:             "SKU-1",
		Price:           50,
		OpeningStock:    10,
		TotalImport:     20,
		TotalExport:     15,
		TotalAdjustment: -2,
		TotalReturn:     1,
	}}

	details, summary := Reconcile(rows, 5)
	if len(details) != 1 {
		t.Fatalf("expected 1 detail row, got %d", len(details))
	}

	d := details[0]
	if d.ClosingStock != 14 {
		t.Fatalf("expected closing 14, got %d", d.ClosingStock)
	}
	if d.StockValue != 700 {
		t.Fatalf("expected stock value 700, got %v", d.StockValue)
	}
	if d.StockStatus != model.StockStatusNormal {
		t.Errorf("expected NORMAL status at 14 with threshold 5, got %s", d.StockStatus)
	}
	if summary.TotalStockValue != 700 || summary.TotalClosingStock != 14 {
		t.Errorf("summary drifted from details: %+v", summary)
	}
}

func TestReconcileIdentity(t *testing.T) {
	rows := []dto.VariantMovementRecord{
		{SKU: "A", Price: 10, OpeningStock: 0, TotalImport: 5, TotalExport: 2, TotalAdjustment: 0, TotalReturn: 1},
		{SKU: "B", Price: 99.5, OpeningStock: 7, TotalImport: 0, TotalExport: 10, TotalAdjustment: -4, TotalReturn: 0},
		{SKU: "C", Price: 0, OpeningStock: -3, TotalImport: 1, TotalExport: 0, TotalAdjustment: 8, TotalReturn: 2},
	}

	details, summary := Reconcile(rows, 5)

	var valueSum float64
	for _, d := range details {
		delta := d.TotalImport - d.TotalExport + d.TotalAdjustment + d.TotalReturn
		if d.ClosingStock-d.OpeningStock != delta {
			t.Errorf("row %s: closing-opening=%d, movements=%d", d.SKU, d.ClosingStock-d.OpeningStock, delta)
		}
		if want := model.ClassifyStock(d.ClosingStock, 5); d.StockStatus != want {
			t.Errorf("row %s: status %s, classification policy says %s", d.SKU, d.StockStatus, want)
		}
		valueSum += d.StockValue
	}

	if math.Abs(valueSum-summary.TotalStockValue) > 1e-9 {
		t.Errorf("summary value %v drifted from detail sum %v", summary.TotalStockValue, valueSum)
	}
	if summary.TotalVariants != len(details) {
		t.Errorf("expected %d variants in summary, got %d", len(details), summary.TotalVariants)
	}
}

func TestReconcileNegativeAdjustmentFlowsThrough(t *testing.T) {
	rows := []dto.VariantMovementRecord{{SKU: "A", Price: 1, OpeningStock: 3, TotalAdjustment: -5}}

	details, summary := Reconcile(rows, 5)
	if details[0].ClosingStock != -2 {
		t.Fatalf("expected closing -2, got %d", details[0].ClosingStock)
	}
	if details[0].StockStatus != model.StockStatusOutOfStock {
		t.Errorf("negative closing must classify OUT_OF_STOCK, got %s", details[0].StockStatus)
	}
	if summary.TotalAdjustment != -5 {
		t.Errorf("summary must keep the adjustment signed, got %d", summary.TotalAdjustment)
	}
}

func TestReconcileStatusCounts(t *testing.T) {
	rows := []dto.VariantMovementRecord{
		{SKU: "A", OpeningStock: 20},
		{SKU: "B", OpeningStock: 3},
		{SKU: "C", OpeningStock: 0},
		{SKU: "D", OpeningStock: 5},
	}

	_, summary := Reconcile(rows, 5)
	if summary.LowStockCount != 2 {
		t.Errorf("expected 2 low-stock rows (3 and 5 at threshold 5), got %d", summary.LowStockCount)
	}
	if summary.OutOfStockCount != 1 {
		t.Errorf("expected 1 out-of-stock row, got %d", summary.OutOfStockCount)
	}
}

func TestReconcileEmptyPeriod(t *testing.T) {
	details, summary := Reconcile(nil, 5)
	if len(details) != 0 {
		t.Fatalf("expected no details, got %d", len(details))
	}
	if summary != (dto.ReportSummary{}) {
		t.Fatalf("expected all-zero summary, got %+v", summary)
	}
}
