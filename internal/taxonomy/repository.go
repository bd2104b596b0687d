package taxonomy

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy/dto"
)

type Repository interface {
	CreateCategory(ctx context.Context, cat *model.Category) error
	FindCategoryByID(ctx context.Context, id string) (*model.Category, error)
	FindCategories(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, cat *model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, brand *model.Brand) error
	FindBrands(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Brand, int, error)
	DeleteBrand(ctx context.Context, id string) error
}
