package model

import "time"

type StockStatus string

const (
	StockStatusNormal     StockStatus = "NORMAL"
	StockStatusLow        StockStatus = "LOW"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// ClassifyStock is the single classification policy for both the live stock
// view and the reconciliation report; the two must never disagree on the
// status of a given quantity.
func ClassifyStock(quantity, lowThreshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity <= lowThreshold:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

type MovementType string

const (
	MovementImport     MovementType = "import"
	MovementExport     MovementType = "export"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
)

// StockMovement is the audit row written alongside every quantity change.
// QuantityChange is signed: negative for exports and downward adjustments.
type StockMovement struct {
	ID             string       `db:"id" json:"id"`
	MerchantID     string       `db:"merchant_id" json:"merchant_id"`
	ProductID      string       `db:"product_id" json:"product_id"`
	VariantID      string       `db:"variant_id" json:"variant_id"`
	MovementType   MovementType `db:"movement_type" json:"movement_type"`
	QuantityChange int          `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int          `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int          `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string      `db:"reference_type" json:"reference_type"`
	ReferenceID    *string      `db:"reference_id" json:"reference_id"`
	Notes          string       `db:"notes" json:"notes"`
	CreatedBy      *string      `db:"created_by" json:"created_by"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

// StockItem is the read projection of a variant for the operator stock view:
// the variant decorated with denormalized product identity and a status tag.
type StockItem struct {
	VariantID        string      `db:"variant_id" json:"variant_id"`
	SKU              string      `db:"sku" json:"sku"`
	Price            float64     `db:"price" json:"price"`
	StockQuantity    int         `db:"stock_quantity" json:"stock_quantity"`
	ColorName        *string     `db:"color_name" json:"color_name"`
	SizeName         *string     `db:"size_name" json:"size_name"`
	OriginName       *string     `db:"origin_name" json:"origin_name"`
	ProductID        string      `db:"product_id" json:"product_id"`
	ProductName      string      `db:"product_name" json:"product_name"`
	ProductThumbnail *string     `db:"product_thumbnail" json:"product_thumbnail"`
	CategoryName     *string     `db:"category_name" json:"category_name"`
	BrandName        *string     `db:"brand_name" json:"brand_name"`
	StockStatus      StockStatus `db:"-" json:"stock_status"`
}
