package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/cache"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/search"
	"github.com/hvngo/stylehub-catalog-service/internal/product"
	"github.com/hvngo/stylehub-catalog-service/internal/product/dto"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("SKU already exists")
)

const productIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	unique, err := uc.repo.IsSKUUnique(ctx, input.MerchantID, input.SKU, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrSKUExists
	}

	now := time.Now()

	categoryID := &input.CategoryID
	if input.CategoryID == "" {
		categoryID = nil
	}
	brandID := &input.BrandID
	if input.BrandID == "" {
		brandID = nil
	}

	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		MerchantID:  input.MerchantID,
		CategoryID:  categoryID,
		BrandID:     brandID,
		SKU:         input.SKU,
		Slug:        slug.Make(input.Name),
		Name:        input.Name,
		Description: &input.Description,
		BasePrice:   input.BasePrice,
		ImageURL:    &input.ImageURL,
		HasVariants: false,
		IsActive:    true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), input.MerchantID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"merchant_id": { "type": "keyword" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"sku": { "type": "keyword" },
				"slug": { "type": "keyword" },
				"base_price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.String("id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	// Search via Elastic when a query is present, DB as fallback.
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"bool": map[string]interface{}{
					"must": []map[string]interface{}{
						{
							"query_string": map[string]interface{}{
								"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
								"fields": []string{"name^3", "sku", "slug", "description"},
							},
						},
						{
							"term": map[string]interface{}{
								"merchant_id": filters.MerchantID,
							},
						},
					},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			var esProducts []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					esProducts = append(esProducts, p)
				}
			}
			return esProducts, res.Hits.Total.Value, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%s:%x", filters.MerchantID, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context, merchantID string) {
	pattern := fmt.Sprintf("products:list:%s:*", merchantID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if p.SKU != input.SKU {
		unique, err := uc.repo.IsSKUUnique(ctx, input.MerchantID, input.SKU, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, ErrSKUExists
		}
	}

	p.SKU = input.SKU
	p.Name = input.Name
	p.Slug = slug.Make(input.Name)
	p.Description = &input.Description
	p.BasePrice = input.BasePrice
	p.ImageURL = &input.ImageURL
	p.IsActive = input.IsActive
	if input.CategoryID != "" {
		catID := input.CategoryID
		p.CategoryID = &catID
	} else {
		p.CategoryID = nil
	}
	if input.BrandID != "" {
		brandID := input.BrandID
		p.BrandID = &brandID
	} else {
		p.BrandID = nil
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), p.MerchantID)
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background(), p.MerchantID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.String("id", id), zap.Error(err))
			}
		}()
	}

	return nil
}
