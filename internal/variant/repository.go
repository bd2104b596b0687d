package variant

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]model.Variant, error)

	// ReplaceForProduct swaps the product's variant set and its has_variants
	// flag in one transaction.
	ReplaceForProduct(ctx context.Context, productID string, hasVariants bool, variants []model.Variant) error
}
