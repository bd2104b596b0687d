package stock

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
)

type UseCase interface {
	// ListGroupedStock returns the stock view grouped by product, urgency
	// sorted and paginated over whole groups.
	ListGroupedStock(ctx context.Context, filters *dto.StockFilters) (*dto.GroupedStockResult, error)

	// Movement writers. Import and return add stock, export deducts,
	// adjustment applies a signed correction.
	AdjustStock(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error)
	ImportStock(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error)
	RecordExport(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error)
	RecordReturn(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error)
}
