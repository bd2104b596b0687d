package attribute

import (
	"context"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
)

type UseCase interface {
	ListValues(ctx context.Context, axis model.AttributeAxis) ([]model.AttributeValue, error)
	CreateValue(ctx context.Context, axis model.AttributeAxis, name string) (*model.AttributeValue, error)
	DeleteValue(ctx context.Context, axis model.AttributeAxis, id int64) error

	// ResolveValues maps ids to values for one axis, erroring on unknown ids.
	ResolveValues(ctx context.Context, axis model.AttributeAxis, ids []int64) (map[int64]model.AttributeValue, error)
}
