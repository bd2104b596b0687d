package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/cache"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/stock"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
	"go.uber.org/zap"
)

var (
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSystemBusy        = errors.New("system busy, please try again later (lock)")
	ErrInvalidQuantity   = errors.New("movement quantity must be positive")
)

type stockUseCase struct {
	repo         stock.Repository
	cache        *cache.RedisClient
	lowThreshold int
	logger       logger.ZapLogger
}

func NewStockUseCase(repo stock.Repository, cache *cache.RedisClient, lowThreshold int, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:         repo,
		cache:        cache,
		lowThreshold: lowThreshold,
		logger:       log,
	}
}

func (uc *stockUseCase) ListGroupedStock(ctx context.Context, filters *dto.StockFilters) (*dto.GroupedStockResult, error) {
	items, err := uc.repo.ListStockItems(ctx, filters)
	if err != nil {
		return nil, err
	}

	// Classification happens on the fresh snapshot; the report uses the same
	// policy so the two surfaces never disagree.
	for i := range items {
		items[i].StockStatus = model.ClassifyStock(items[i].StockQuantity, uc.lowThreshold)
	}

	if filters.Status != "" {
		filtered := items[:0]
		for _, item := range items {
			if item.StockStatus == filters.Status {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	groups := GroupStockItems(items)
	paged := PageGroups(groups, filters.Page, filters.PageSize)

	return &dto.GroupedStockResult{
		Groups:      paged,
		TotalGroups: len(groups),
		Page:        filters.Page,
		PageSize:    filters.PageSize,
	}, nil
}

func (uc *stockUseCase) AdjustStock(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error) {
	// Signed delta; zero is a no-op not worth a movement row.
	if input.Quantity == 0 {
		return nil, ErrInvalidQuantity
	}
	return uc.applyMovement(ctx, input, model.MovementAdjustment, input.Quantity)
}

func (uc *stockUseCase) ImportStock(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return uc.applyMovement(ctx, input, model.MovementImport, input.Quantity)
}

func (uc *stockUseCase) RecordExport(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return uc.applyMovement(ctx, input, model.MovementExport, -input.Quantity)
}

func (uc *stockUseCase) RecordReturn(ctx context.Context, input *dto.ApplyMovementInput) (*model.Variant, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return uc.applyMovement(ctx, input, model.MovementReturn, input.Quantity)
}

func (uc *stockUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *stockUseCase) applyMovement(ctx context.Context, input *dto.ApplyMovementInput, movementType model.MovementType, change int) (*model.Variant, error) {
	lockKey := fmt.Sprintf("lock:stock:%s:%s", input.MerchantID, input.VariantID)
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire stock lock", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, ErrSystemBusy
	}
	defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)

	v, err := uc.repo.FindVariantByID(ctx, input.VariantID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVariantNotFound
	}

	quantityBefore := v.StockQuantity
	quantityAfter := quantityBefore + change
	if quantityAfter < 0 {
		return nil, ErrInsufficientStock
	}

	var refID *string
	if input.ReferenceID != "" {
		refID = &input.ReferenceID
	}
	var refType *string
	if input.ReferenceType != "" {
		refType = &input.ReferenceType
	}
	var createdBy *string
	if input.UserID != "" && input.UserID != "system" {
		createdBy = &input.UserID
	}

	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		MerchantID:     input.MerchantID,
		ProductID:      v.ProductID,
		VariantID:      v.ID,
		MovementType:   movementType,
		QuantityChange: change,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		ReferenceType:  refType,
		ReferenceID:    refID,
		Notes:          input.Reason,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}

	if err := uc.repo.ApplyMovement(ctx, v.ID, quantityAfter, movement); err != nil {
		return nil, err
	}

	v.StockQuantity = quantityAfter
	v.UpdatedAt = movement.CreatedAt
	return v, nil
}
