package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hvngo/stylehub-catalog-service/internal/attribute"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/product"
	productuc "github.com/hvngo/stylehub-catalog-service/internal/product/usecase"
	"github.com/hvngo/stylehub-catalog-service/internal/variant"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
	"go.uber.org/zap"
)

type variantUseCase struct {
	repo        variant.Repository
	productRepo product.Repository
	attributes  attribute.UseCase
	logger      logger.ZapLogger
}

func NewVariantUseCase(repo variant.Repository, productRepo product.Repository, attributes attribute.UseCase, log logger.ZapLogger) variant.UseCase {
	return &variantUseCase{
		repo:        repo,
		productRepo: productRepo,
		attributes:  attributes,
		logger:      log,
	}
}

func (uc *variantUseCase) PreviewMatrix(ctx context.Context, input *dto.GenerateMatrixInput) ([]dto.VariantDraft, error) {
	p, selling, display, err := uc.resolveInput(ctx, input)
	if err != nil {
		return nil, err
	}

	basePrice := input.BasePrice
	if basePrice == 0 {
		basePrice = p.BasePrice
	}

	return BuildMatrix(p.SKU, basePrice, selling, display)
}

func (uc *variantUseCase) GenerateVariants(ctx context.Context, input *dto.GenerateMatrixInput) ([]model.Variant, error) {
	drafts, err := uc.PreviewMatrix(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := ValidateDrafts(drafts, len(input.Selling) > 0); err != nil {
		return nil, err
	}

	now := time.Now()
	variants := make([]model.Variant, len(drafts))
	for i, d := range drafts {
		variants[i] = model.Variant{
			BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			ProductID:     input.ProductID,
			SKU:           d.SKU,
			Price:         d.Price,
			StockQuantity: d.StockQuantity,
			ColorID:       d.ColorID,
			SizeID:        d.SizeID,
			OriginID:      d.OriginID,
			IsActive:      true,
		}
	}

	hasVariants := len(input.Selling) > 0
	if err := uc.repo.ReplaceForProduct(ctx, input.ProductID, hasVariants, variants); err != nil {
		return nil, err
	}

	uc.logger.Info("generated variant set",
		zap.String("product_id", input.ProductID),
		zap.Int("variants", len(variants)),
	)

	return variants, nil
}

func (uc *variantUseCase) ListVariants(ctx context.Context, productID string) ([]model.Variant, error) {
	return uc.repo.ListByProduct(ctx, productID)
}

// resolveInput loads the product and turns the selected value ids into full
// attribute values, preserving the operator's selection order per axis.
func (uc *variantUseCase) resolveInput(ctx context.Context, input *dto.GenerateMatrixInput) (
	*model.Product,
	map[model.AttributeAxis][]model.AttributeValue,
	map[model.AttributeAxis]model.AttributeValue,
	error,
) {
	p, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, nil, nil, err
	}
	if p == nil {
		return nil, nil, nil, productuc.ErrProductNotFound
	}

	selling := make(map[model.AttributeAxis][]model.AttributeValue, len(input.Selling))
	for axis, ids := range input.Selling {
		resolved, err := uc.attributes.ResolveValues(ctx, axis, ids)
		if err != nil {
			return nil, nil, nil, err
		}
		values := make([]model.AttributeValue, 0, len(ids))
		for _, id := range ids {
			values = append(values, resolved[id])
		}
		selling[axis] = values
	}

	display := make(map[model.AttributeAxis]model.AttributeValue, len(input.Display))
	for axis, id := range input.Display {
		resolved, err := uc.attributes.ResolveValues(ctx, axis, []int64{id})
		if err != nil {
			return nil, nil, nil, err
		}
		display[axis] = resolved[id]
	}

	return p, selling, display, nil
}
