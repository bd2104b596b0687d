package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy/dto"
)

var ErrCategoryNotFound = errors.New("category not found")

type taxonomyUseCase struct {
	repo   taxonomy.Repository
	logger logger.ZapLogger
}

func NewTaxonomyUseCase(repo taxonomy.Repository, log logger.ZapLogger) taxonomy.UseCase {
	return &taxonomyUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *taxonomyUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MerchantID:  input.MerchantID,
		Name:        input.Name,
		Description: &input.Description,
		ImageURL:    &input.ImageURL,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := uc.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *taxonomyUseCase) ListCategories(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Category, int, error) {
	return uc.repo.FindCategories(ctx, filters)
}

func (uc *taxonomyUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindCategoryByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	cat.Name = input.Name
	cat.Description = &input.Description
	cat.ImageURL = &input.ImageURL
	cat.SortOrder = input.SortOrder
	cat.IsActive = input.IsActive
	cat.UpdatedAt = time.Now()

	if err := uc.repo.UpdateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *taxonomyUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.DeleteCategory(ctx, id)
}

func (uc *taxonomyUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	now := time.Now()
	brand := &model.Brand{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MerchantID: input.MerchantID,
		Name:       input.Name,
		LogoURL:    &input.LogoURL,
		IsActive:   true,
	}

	if err := uc.repo.CreateBrand(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (uc *taxonomyUseCase) ListBrands(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Brand, int, error) {
	return uc.repo.FindBrands(ctx, filters)
}

func (uc *taxonomyUseCase) DeleteBrand(ctx context.Context, id string) error {
	return uc.repo.DeleteBrand(ctx, id)
}
