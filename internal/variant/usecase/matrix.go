package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/variant/dto"
)

var (
	// ErrEmptyAxis rejects a selling axis declared with no selected values.
	ErrEmptyAxis = errors.New("selling axis has no selected values")
	// ErrAxisConflict rejects an axis declared as both selling and display.
	ErrAxisConflict = errors.New("axis declared as both selling and display")
	// ErrInvalidPrice marks a draft set whose price would be rejected at persistence.
	ErrInvalidPrice = errors.New("variant price must be greater than zero")
)

type axisValue struct {
	axis  model.AttributeAxis
	value model.AttributeValue
}

// BuildMatrix expands the selected selling values into the full cross-product
// of purchasable variants. Axes branch in fixed COLOR, SIZE, ORIGIN order so
// the output ordering and derived SKUs are deterministic. Display axes stamp a
// single constant value onto every generated variant and never multiply the
// set. With no selling axes exactly one draft is produced (simple product).
//
// The function is pure: it is meant to be re-run wholesale on every input
// change, with the previous output discarded.
func BuildMatrix(
	baseSKU string,
	basePrice float64,
	selling map[model.AttributeAxis][]model.AttributeValue,
	display map[model.AttributeAxis]model.AttributeValue,
) ([]dto.VariantDraft, error) {
	for axis, values := range selling {
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyAxis, axis)
		}
		if _, ok := display[axis]; ok {
			return nil, fmt.Errorf("%w: %s", ErrAxisConflict, axis)
		}
	}

	// Fold the cartesian product over the ordered axis list. Starting from a
	// single empty tuple makes the no-selling-axes case fall out naturally.
	tuples := [][]axisValue{{}}
	for _, axis := range model.AxisOrder {
		values, ok := selling[axis]
		if !ok {
			continue
		}
		next := make([][]axisValue, 0, len(tuples)*len(values))
		for _, tuple := range tuples {
			for _, v := range values {
				extended := make([]axisValue, len(tuple), len(tuple)+1)
				copy(extended, tuple)
				extended = append(extended, axisValue{axis: axis, value: v})
				next = append(next, extended)
			}
		}
		tuples = next
	}

	drafts := make([]dto.VariantDraft, 0, len(tuples))
	for _, tuple := range tuples {
		draft := dto.VariantDraft{
			SKU:           deriveSKU(baseSKU, tuple),
			Price:         basePrice,
			StockQuantity: 0,
		}
		for _, av := range tuple {
			stampAxis(&draft, av.axis, av.value)
		}
		for _, axis := range model.AxisOrder {
			if v, ok := display[axis]; ok {
				stampAxis(&draft, axis, v)
			}
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

func stampAxis(d *dto.VariantDraft, axis model.AttributeAxis, v model.AttributeValue) {
	id := v.ID
	name := v.Name
	switch axis {
	case model.AxisColor:
		d.ColorID, d.ColorName = &id, &name
	case model.AxisSize:
		d.SizeID, d.SizeName = &id, &name
	case model.AxisOrigin:
		d.OriginID, d.OriginName = &id, &name
	}
}

// deriveSKU builds the advisory SKU suffix from the uppercased value names in
// axis order. Uniqueness is enforced by the database, not here; the "-NEW"
// literal only keeps a suffix-less variant from colliding with the base SKU.
func deriveSKU(baseSKU string, tuple []axisValue) string {
	if len(tuple) == 0 {
		return baseSKU + "-NEW"
	}
	parts := make([]string, 0, len(tuple)+1)
	parts = append(parts, baseSKU)
	for _, av := range tuple {
		parts = append(parts, strings.ToUpper(av.value.Name))
	}
	return strings.Join(parts, "-")
}

// ValidateDrafts applies the persistence-time validation rules: the set must
// be non-empty when a selling axis was declared, and every price positive.
// Matrix construction itself never enforces these (preview still renders a
// zero-priced matrix); persistence must reject it.
func ValidateDrafts(drafts []dto.VariantDraft, sellingDeclared bool) error {
	if sellingDeclared && len(drafts) == 0 {
		return ErrEmptyAxis
	}
	for _, d := range drafts {
		if d.Price <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPrice, d.SKU)
		}
	}
	return nil
}
