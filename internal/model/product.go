package model

type Product struct {
	BaseModel
	MerchantID  string    `db:"merchant_id" json:"merchant_id"`
	CategoryID  *string   `db:"category_id" json:"category_id"`
	BrandID     *string   `db:"brand_id" json:"brand_id"`
	SKU         string    `db:"sku" json:"sku"`
	Slug        string    `db:"slug" json:"slug"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	BasePrice   float64   `db:"base_price" json:"base_price"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	HasVariants bool      `db:"has_variants" json:"has_variants"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	Variants    []Variant `db:"-" json:"variants,omitempty"`
}

// Variant is one purchasable combination of a product's selling attributes.
// No two variants of a product may share the same (color, size, origin)
// triple; the all-null triple is the single simple-product variant.
type Variant struct {
	BaseModel
	ProductID     string  `db:"product_id" json:"product_id"`
	SKU           string  `db:"sku" json:"sku"`
	Price         float64 `db:"price" json:"price"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	ColorID       *int64  `db:"color_id" json:"color_id"`
	SizeID        *int64  `db:"size_id" json:"size_id"`
	OriginID      *int64  `db:"origin_id" json:"origin_id"`
	ImageURL      *string `db:"image_url" json:"image_url"`
	IsActive      bool    `db:"is_active" json:"is_active"`
}
