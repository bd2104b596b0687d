package product

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	IsSKUUnique(ctx context.Context, merchantID, sku, excludeID string) (bool, error)
}
