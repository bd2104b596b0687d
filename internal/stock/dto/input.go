package dto

import (
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
)

type StockFilters struct {
	MerchantID  string
	SearchQuery string // product name or sku
	CategoryID  string
	BrandID     string
	Status      model.StockStatus // keep only items with this status
	Page        int
	PageSize    int
}

type ApplyMovementInput struct {
	MerchantID string
	VariantID  string
	// Quantity is a magnitude for import/export/return and a signed delta for
	// adjustments (negative means a downward correction).
	Quantity      int
	Reason        string
	ReferenceID   string
	ReferenceType string
	UserID        string
}

type MovementFilters struct {
	MerchantID   string
	ProductID    string
	VariantID    string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}

// ProductStockGroup is the per-product rollup of the operator stock view.
// It is rebuilt wholesale on every grouping pass; the aggregate fields are
// derived from Items and never mutated independently.
type ProductStockGroup struct {
	ProductID        string            `json:"product_id"`
	ProductName      string            `json:"product_name"`
	ProductThumbnail *string           `json:"product_thumbnail"`
	CategoryName     *string           `json:"category_name"`
	BrandName        *string           `json:"brand_name"`
	Items            []model.StockItem `json:"items"`
	TotalVariants    int               `json:"total_variants"`
	TotalStock       int               `json:"total_stock"`
	HasLowStock      bool              `json:"has_low_stock"`
	HasOutOfStock    bool              `json:"has_out_of_stock"`
}

type GroupedStockResult struct {
	Groups      []ProductStockGroup `json:"groups"`
	TotalGroups int                 `json:"total_groups"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}
