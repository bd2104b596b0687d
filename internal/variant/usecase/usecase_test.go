package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	proddto "github.com/hvngo/stylehub-catalog-service/internal/product/dto"
	productuc "github.com/hvngo/stylehub-catalog-service/internal/product/usecase"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
	"go.uber.org/zap"
)

type fakeVariantRepo struct {
	stored      []model.Variant
	hasVariants bool
}

func (r *fakeVariantRepo) ListByProduct(ctx context.Context, productID string) ([]model.Variant, error) {
	return r.stored, nil
}

func (r *fakeVariantRepo) ReplaceForProduct(ctx context.Context, productID string, hasVariants bool, variants []model.Variant) error {
	r.stored = variants
	r.hasVariants = hasVariants
	return nil
}

type fakeProductRepo struct {
	products map[string]*model.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *model.Product) error { return nil }
func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) FindAll(ctx context.Context, f *proddto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Update(ctx context.Context, p *model.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id string) error        { return nil }
func (r *fakeProductRepo) IsSKUUnique(ctx context.Context, merchantID, sku, excludeID string) (bool, error) {
	return true, nil
}

type fakeAttributes struct {
	values map[model.AttributeAxis]map[int64]model.AttributeValue
}

func (a *fakeAttributes) ListValues(ctx context.Context, axis model.AttributeAxis) ([]model.AttributeValue, error) {
	return nil, nil
}
func (a *fakeAttributes) CreateValue(ctx context.Context, axis model.AttributeAxis, name string) (*model.AttributeValue, error) {
	return nil, nil
}
func (a *fakeAttributes) DeleteValue(ctx context.Context, axis model.AttributeAxis, id int64) error {
	return nil
}
func (a *fakeAttributes) ResolveValues(ctx context.Context, axis model.AttributeAxis, ids []int64) (map[int64]model.AttributeValue, error) {
	pool, ok := a.values[axis]
	if !ok {
		return nil, errors.New("unknown axis")
	}
	resolved := make(map[int64]model.AttributeValue, len(ids))
	for _, id := range ids {
		v, ok := pool[id]
		if !ok {
			return nil, errors.New("unknown value id")
		}
		resolved[id] = v
	}
	return resolved, nil
}

func newTestUseCase(t *testing.T) (*fakeVariantRepo, *variantUseCase) {
	t.Helper()
	repo := &fakeVariantRepo{}
	products := &fakeProductRepo{products: map[string]*model.Product{
		"p1": {
			BaseModel: model.BaseModel{ID: "p1"},
			SKU:       "TSHIRT",
			BasePrice: 80,
		},
	}}
	attrs := &fakeAttributes{values: map[model.AttributeAxis]map[int64]model.AttributeValue{
		model.AxisColor: {
			1: {ID: 1, Name: "Red"},
			2: {ID: 2, Name: "Blue"},
		},
		model.AxisSize: {
			10: {ID: 10, Name: "M"},
			11: {ID: 11, Name: "L"},
		},
		model.AxisOrigin: {
			20: {ID: 20, Name: "Vietnam"},
		},
	}}

	uc := NewVariantUseCase(repo, products, attrs, zapNop{}).(*variantUseCase)
	return repo, uc
}

type zapNop struct{}

func (zapNop) Debug(msg string, fields ...zap.Field) {}
func (zapNop) Info(msg string, fields ...zap.Field)  {}
func (zapNop) Warn(msg string, fields ...zap.Field)  {}
func (zapNop) Error(msg string, fields ...zap.Field) {}
func (zapNop) Fatal(msg string, fields ...zap.Field) {}
func (zapNop) Sync() error                           { return nil }

func TestPreviewMatrixResolvesSelection(t *testing.T) {
	_, uc := newTestUseCase(t)

	drafts, err := uc.PreviewMatrix(context.Background(), &dto.GenerateMatrixInput{
		ProductID: "p1",
		BasePrice: 100,
		Selling: map[model.AttributeAxis][]int64{
			model.AxisColor: {1, 2},
			model.AxisSize:  {10, 11},
		},
	})
	if err != nil {
		t.Fatalf("PreviewMatrix returned error: %v", err)
	}
	if len(drafts) != 4 {
		t.Fatalf("expected 4 drafts, got %d", len(drafts))
	}
	if drafts[0].SKU != "TSHIRT-RED-M" {
		t.Errorf("expected first sku TSHIRT-RED-M, got %q", drafts[0].SKU)
	}
}

func TestPreviewMatrixFallsBackToProductPrice(t *testing.T) {
	_, uc := newTestUseCase(t)

	drafts, err := uc.PreviewMatrix(context.Background(), &dto.GenerateMatrixInput{
		ProductID: "p1",
		Selling: map[model.AttributeAxis][]int64{
			model.AxisColor: {1},
		},
	})
	if err != nil {
		t.Fatalf("PreviewMatrix returned error: %v", err)
	}
	if drafts[0].Price != 80 {
		t.Errorf("expected product base price 80, got %v", drafts[0].Price)
	}
}

func TestPreviewMatrixUnknownProduct(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.PreviewMatrix(context.Background(), &dto.GenerateMatrixInput{ProductID: "missing"})
	if !errors.Is(err, productuc.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGenerateVariantsPersistsSet(t *testing.T) {
	repo, uc := newTestUseCase(t)

	variants, err := uc.GenerateVariants(context.Background(), &dto.GenerateMatrixInput{
		ProductID: "p1",
		BasePrice: 100,
		Selling: map[model.AttributeAxis][]int64{
			model.AxisColor: {1, 2},
		},
		Display: map[model.AttributeAxis]int64{
			model.AxisOrigin: 20,
		},
	})
	if err != nil {
		t.Fatalf("GenerateVariants returned error: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if len(repo.stored) != 2 {
		t.Fatalf("expected persisted set of 2, got %d", len(repo.stored))
	}
	if !repo.hasVariants {
		t.Errorf("selling axes declared, has_variants must be true")
	}
	for i, v := range repo.stored {
		if v.ID == "" {
			t.Errorf("variant %d: missing id", i)
		}
		if v.OriginID == nil || *v.OriginID != 20 {
			t.Errorf("variant %d: display origin not stamped", i)
		}
		if !v.IsActive {
			t.Errorf("variant %d: new variants must be active", i)
		}
	}
}

func TestGenerateVariantsSimpleProduct(t *testing.T) {
	repo, uc := newTestUseCase(t)

	variants, err := uc.GenerateVariants(context.Background(), &dto.GenerateMatrixInput{
		ProductID: "p1",
		BasePrice: 60,
	})
	if err != nil {
		t.Fatalf("GenerateVariants returned error: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}
	if repo.hasVariants {
		t.Errorf("no selling axes, has_variants must stay false")
	}
}

func TestGenerateVariantsRejectsEmptyAxis(t *testing.T) {
	_, uc := newTestUseCase(t)

	_, err := uc.GenerateVariants(context.Background(), &dto.GenerateMatrixInput{
		ProductID: "p1",
		BasePrice: 100,
		Selling: map[model.AttributeAxis][]int64{
			model.AxisColor: {},
		},
	})
	if !errors.Is(err, ErrEmptyAxis) {
		t.Fatalf("expected ErrEmptyAxis, got %v", err)
	}
}
