package stock

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
)

type Repository interface {
	// ListStockItems returns the full filtered projection; grouping and
	// pagination happen in memory on whole product groups.
	ListStockItems(ctx context.Context, filters *dto.StockFilters) ([]model.StockItem, error)

	FindVariantByID(ctx context.Context, variantID string) (*model.Variant, error)

	// ApplyMovement updates the variant quantity and writes the movement row
	// in one transaction.
	ApplyMovement(ctx context.Context, variantID string, newQuantity int, movement *model.StockMovement) error

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
