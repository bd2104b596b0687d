package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/attribute"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/cache"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"go.uber.org/zap"
)

var ErrValueNotFound = errors.New("attribute value not found")

const poolTTL = 10 * time.Minute

type attributeUseCase struct {
	repo   attribute.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewAttributeUseCase(repo attribute.Repository, cache *cache.RedisClient, log logger.ZapLogger) attribute.UseCase {
	return &attributeUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func poolCacheKey(axis model.AttributeAxis) string {
	return fmt.Sprintf("attributes:pool:%s", axis)
}

func (uc *attributeUseCase) ListValues(ctx context.Context, axis model.AttributeAxis) ([]model.AttributeValue, error) {
	key := poolCacheKey(axis)

	if val, err := uc.cache.Client.Get(ctx, key).Result(); err == nil {
		var values []model.AttributeValue
		if err := json.Unmarshal([]byte(val), &values); err == nil {
			return values, nil
		}
	}

	values, err := uc.repo.ListByAxis(ctx, axis)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(values); err == nil {
		uc.cache.Client.Set(ctx, key, data, poolTTL)
	}

	return values, nil
}

func (uc *attributeUseCase) CreateValue(ctx context.Context, axis model.AttributeAxis, name string) (*model.AttributeValue, error) {
	value, err := uc.repo.Create(ctx, axis, name)
	if err != nil {
		return nil, err
	}

	uc.invalidatePool(ctx, axis)
	return value, nil
}

func (uc *attributeUseCase) DeleteValue(ctx context.Context, axis model.AttributeAxis, id int64) error {
	if err := uc.repo.Delete(ctx, axis, id); err != nil {
		return err
	}

	uc.invalidatePool(ctx, axis)
	return nil
}

func (uc *attributeUseCase) ResolveValues(ctx context.Context, axis model.AttributeAxis, ids []int64) (map[int64]model.AttributeValue, error) {
	values, err := uc.repo.FindByIDs(ctx, axis, ids)
	if err != nil {
		return nil, err
	}

	resolved := make(map[int64]model.AttributeValue, len(values))
	for _, v := range values {
		resolved[v.ID] = v
	}

	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			return nil, fmt.Errorf("%w: %s %d", ErrValueNotFound, axis, id)
		}
	}

	return resolved, nil
}

func (uc *attributeUseCase) invalidatePool(ctx context.Context, axis model.AttributeAxis) {
	if err := uc.cache.Client.Del(ctx, poolCacheKey(axis)).Err(); err != nil {
		uc.logger.Error("failed to invalidate attribute pool cache", zap.String("axis", string(axis)), zap.Error(err))
	}
}
