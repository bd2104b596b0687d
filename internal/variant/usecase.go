package variant

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
)

type UseCase interface {
	// PreviewMatrix expands the current selection without persisting anything;
	// it is re-run on every operator toggle and its output fully replaces the
	// previous preview.
	PreviewMatrix(ctx context.Context, input *dto.GenerateMatrixInput) ([]dto.VariantDraft, error)

	// GenerateVariants validates the expanded matrix and persists it as the
	// product's variant set, replacing whatever was generated before.
	GenerateVariants(ctx context.Context, input *dto.GenerateMatrixInput) ([]model.Variant, error)

	ListVariants(ctx context.Context, productID string) ([]model.Variant, error)
}
