package taxonomy

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy/dto"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	ListBrands(ctx context.Context, filters *dto.TaxonomyFilters) ([]model.Brand, int, error)
	DeleteBrand(ctx context.Context, id string) error
}
