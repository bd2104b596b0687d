package dto

type TaxonomyFilters struct {
	MerchantID string
	IsActive   *bool
	Page       int
	PageSize   int
}

type CreateCategoryInput struct {
	MerchantID  string
	Name        string
	Description string
	ImageURL    string
	SortOrder   int
}

type UpdateCategoryInput struct {
	ID          string
	MerchantID  string
	Name        string
	Description string
	ImageURL    string
	SortOrder   int
	IsActive    bool
}

type CreateBrandInput struct {
	MerchantID string
	Name       string
	LogoURL    string
}
