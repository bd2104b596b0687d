package dto

type ProductFilters struct {
	MerchantID  string
	CategoryID  string
	BrandID     string
	IsActive    *bool
	SearchQuery string // name, sku or slug search
	SortBy      string // name, price, created_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}

type CreateProductInput struct {
	MerchantID  string
	CategoryID  string
	BrandID     string
	SKU         string
	Name        string
	Description string
	BasePrice   float64
	ImageURL    string
}

type UpdateProductInput struct {
	ID          string
	MerchantID  string
	CategoryID  string
	BrandID     string
	SKU         string
	Name        string
	Description string
	BasePrice   float64
	ImageURL    string
	IsActive    bool
}
