package attribute

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
)

type Repository interface {
	ListByAxis(ctx context.Context, axis model.AttributeAxis) ([]model.AttributeValue, error)
	FindByIDs(ctx context.Context, axis model.AttributeAxis, ids []int64) ([]model.AttributeValue, error)
	Create(ctx context.Context, axis model.AttributeAxis, name string) (*model.AttributeValue, error)
	Delete(ctx context.Context, axis model.AttributeAxis, id int64) error
}
