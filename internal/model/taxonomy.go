package model

type Category struct {
	BaseModel
	MerchantID  string  `db:"merchant_id" json:"merchant_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url" json:"image_url"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}

type Brand struct {
	BaseModel
	MerchantID string  `db:"merchant_id" json:"merchant_id"`
	Name       string  `db:"name" json:"name"`
	LogoURL    *string `db:"logo_url" json:"logo_url"`
	IsActive   bool    `db:"is_active" json:"is_active"`
}
