package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
)

func av(id int64, name string) model.AttributeValue {
	return model.AttributeValue{ID: id, Name: name}
}

func tupleKey(d dto.VariantDraft) string {
	f := func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	}
	return fmt.Sprintf("%d/%d/%d", f(d.ColorID), f(d.SizeID), f(d.OriginID))
}

func TestBuildMatrixTwoByTwo(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisColor: {av(1, "Red"), av(2, "Blue")},
		model.AxisSize:  {av(10, "M"), av(11, "L")},
	}

	drafts, err := BuildMatrix("TSHIRT", 100, selling, nil)
	if err != nil {
		t.Fatalf("BuildMatrix returned error: %v", err)
	}
	if len(drafts) != 4 {
		t.Fatalf("expected 4 drafts, got %d", len(drafts))
	}

	wantSKUs := []string{"TSHIRT-RED-M", "TSHIRT-RED-L", "TSHIRT-BLUE-M", "TSHIRT-BLUE-L"}
	for i, d := range drafts {
		if d.SKU != wantSKUs[i] {
			t.Errorf("draft %d: expected sku %q, got %q", i, wantSKUs[i], d.SKU)
		}
		if d.Price != 100 {
			t.Errorf("draft %d: expected price 100, got %v", i, d.Price)
		}
		if d.StockQuantity != 0 {
			t.Errorf("draft %d: expected zero stock, got %d", i, d.StockQuantity)
		}
		if d.ColorID == nil || d.SizeID == nil {
			t.Errorf("draft %d: missing color or size id", i)
		}
		if d.OriginID != nil {
			t.Errorf("draft %d: unexpected origin id", i)
		}
	}
}

func TestBuildMatrixCardinalityAndUniqueness(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisColor:  {av(1, "Red"), av(2, "Blue")},
		model.AxisSize:   {av(10, "S"), av(11, "M"), av(12, "L")},
		model.AxisOrigin: {av(20, "Vietnam"), av(21, "Japan")},
	}

	drafts, err := BuildMatrix("SKU", 10, selling, nil)
	if err != nil {
		t.Fatalf("BuildMatrix returned error: %v", err)
	}
	if len(drafts) != 12 {
		t.Fatalf("expected 2*3*2=12 drafts, got %d", len(drafts))
	}

	seen := make(map[string]bool)
	for _, d := range drafts {
		key := tupleKey(d)
		if seen[key] {
			t.Fatalf("duplicate attribute tuple %s", key)
		}
		seen[key] = true
	}
}

func TestBuildMatrixIdempotent(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisColor: {av(1, "Red"), av(2, "Blue")},
		model.AxisSize:  {av(10, "M")},
	}
	display := map[model.AttributeAxis]model.AttributeValue{
		model.AxisOrigin: av(20, "Vietnam"),
	}

	first, err := BuildMatrix("SKU", 25, selling, display)
	if err != nil {
		t.Fatalf("first BuildMatrix returned error: %v", err)
	}
	second, err := BuildMatrix("SKU", 25, selling, display)
	if err != nil {
		t.Fatalf("second BuildMatrix returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestBuildMatrixSimpleProduct(t *testing.T) {
	display := map[model.AttributeAxis]model.AttributeValue{
		model.AxisOrigin: av(20, "Vietnam"),
	}

	drafts, err := BuildMatrix("SKU", 50, nil, display)
	if err != nil {
		t.Fatalf("BuildMatrix returned error: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("expected exactly 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.SKU != "SKU-NEW" {
		t.Errorf("expected sku SKU-NEW, got %q", d.SKU)
	}
	if d.OriginID == nil || *d.OriginID != 20 {
		t.Errorf("expected origin id 20, got %v", d.OriginID)
	}
	if d.OriginName == nil || *d.OriginName != "Vietnam" {
		t.Errorf("expected origin name Vietnam, got %v", d.OriginName)
	}
	if d.ColorID != nil || d.SizeID != nil {
		t.Errorf("simple product must not carry color or size, got %+v", d)
	}
}

func TestBuildMatrixDisplayDoesNotMultiply(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisSize: {av(10, "M"), av(11, "L")},
	}
	display := map[model.AttributeAxis]model.AttributeValue{
		model.AxisOrigin: av(20, "Vietnam"),
	}

	drafts, err := BuildMatrix("SKU", 30, selling, display)
	if err != nil {
		t.Fatalf("BuildMatrix returned error: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("display axis must not branch: expected 2 drafts, got %d", len(drafts))
	}
	for i, d := range drafts {
		if d.OriginID == nil || *d.OriginID != 20 {
			t.Errorf("draft %d: display origin not stamped", i)
		}
	}
	// Display values annotate, they never reach the SKU suffix.
	if drafts[0].SKU != "SKU-M" || drafts[1].SKU != "SKU-L" {
		t.Errorf("unexpected skus %q, %q", drafts[0].SKU, drafts[1].SKU)
	}
}

func TestBuildMatrixEmptySellingAxis(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisColor: {},
	}

	if _, err := BuildMatrix("SKU", 10, selling, nil); !errors.Is(err, ErrEmptyAxis) {
		t.Fatalf("expected ErrEmptyAxis, got %v", err)
	}
}

func TestBuildMatrixAxisConflict(t *testing.T) {
	selling := map[model.AttributeAxis][]model.AttributeValue{
		model.AxisColor: {av(1, "Red")},
	}
	display := map[model.AttributeAxis]model.AttributeValue{
		model.AxisColor: av(2, "Blue"),
	}

	if _, err := BuildMatrix("SKU", 10, selling, display); !errors.Is(err, ErrAxisConflict) {
		t.Fatalf("expected ErrAxisConflict, got %v", err)
	}
}

func TestValidateDrafts(t *testing.T) {
	valid := []dto.VariantDraft{{SKU: "A", Price: 10}, {SKU: "B", Price: 20}}
	if err := ValidateDrafts(valid, true); err != nil {
		t.Fatalf("valid drafts rejected: %v", err)
	}

	zeroPrice := []dto.VariantDraft{{SKU: "A", Price: 0}}
	if err := ValidateDrafts(zeroPrice, true); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	if err := ValidateDrafts(nil, true); !errors.Is(err, ErrEmptyAxis) {
		t.Fatalf("expected ErrEmptyAxis for empty set with selling declared, got %v", err)
	}

	if err := ValidateDrafts(nil, false); err != nil {
		t.Fatalf("empty set without selling axes must pass, got %v", err)
	}
}
