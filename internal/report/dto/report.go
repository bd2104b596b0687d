package dto

import "github.com/hvngo/stylehub-catalog-service/internal/model"

type ReportFilters struct {
	MerchantID string
	Year       int
	Month      int
}

// VariantMovementRecord is one reconciliation row. The movement totals come
// straight from storage; closing stock, stock value and status are derived in
// memory during reconciliation, so they carry no db tags.
//
// Import, export and return totals are non-negative magnitudes; adjustment is
// signed, a negative value is a downward correction.
type VariantMovementRecord struct {
	SKU             string  `db:"sku" json:"sku"`
	ProductName     string  `db:"product_name" json:"product_name"`
	ColorName       *string `db:"color_name" json:"color_name"`
	SizeName        *string `db:"size_name" json:"size_name"`
	OriginName      *string `db:"origin_name" json:"origin_name"`
	Price           float64 `db:"price" json:"price"`
	OpeningStock    int     `db:"opening_stock" json:"opening_stock"`
	TotalImport     int     `db:"total_import" json:"total_import"`
	TotalExport     int     `db:"total_export" json:"total_export"`
	TotalAdjustment int     `db:"total_adjustment" json:"total_adjustment"`
	TotalReturn     int     `db:"total_return" json:"total_return"`

	ClosingStock int               `db:"-" json:"closing_stock"`
	StockValue   float64           `db:"-" json:"stock_value"`
	StockStatus  model.StockStatus `db:"-" json:"stock_status"`
}

// ReportSummary is computed once from the detail slice after reconciliation.
// The CSV export prints these numbers, it never recomputes them.
type ReportSummary struct {
	TotalVariants     int     `json:"total_variants"`
	TotalClosingStock int     `json:"total_closing_stock"`
	TotalStockValue   float64 `json:"total_stock_value"`
	LowStockCount     int     `json:"low_stock_count"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
	TotalImport       int     `json:"total_import"`
	TotalExport       int     `json:"total_export"`
	TotalAdjustment   int     `json:"total_adjustment"`
	TotalReturn       int     `json:"total_return"`
}

type ReconciliationReport struct {
	Year    int                     `json:"year"`
	Month   int                     `json:"month"`
	Details []VariantMovementRecord `json:"details"`
	Summary ReportSummary           `json:"summary"`
}
