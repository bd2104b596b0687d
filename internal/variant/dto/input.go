package dto

import "github.com/hvngo/stylehub-catalog-service/internal/model"

// GenerateMatrixInput is the operator's selection state for one product:
// which axes sell (with the chosen value ids, in selection order) and which
// carry a single display-only value.
type GenerateMatrixInput struct {
	ProductID  string
	MerchantID string
	BasePrice  float64 // 0 falls back to the product's base price
	Selling    map[model.AttributeAxis][]int64
	Display    map[model.AttributeAxis]int64
}

// VariantDraft is one generated, not-yet-persisted variant. Names are carried
// alongside the IDs so the preview can render without extra lookups.
type VariantDraft struct {
	SKU           string  `json:"sku"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	ColorID       *int64  `json:"color_id"`
	SizeID        *int64  `json:"size_id"`
	OriginID      *int64  `json:"origin_id"`
	ColorName     *string `json:"color_name"`
	SizeName      *string `json:"size_name"`
	OriginName    *string `json:"origin_name"`
}
