package model

import "fmt"

// AttributeAxis identifies one of the three independent sellable axes.
type AttributeAxis string

const (
	AxisColor  AttributeAxis = "color"
	AxisSize   AttributeAxis = "size"
	AxisOrigin AttributeAxis = "origin"
)

// AxisOrder is the fixed iteration order for variant generation and SKU
// suffixes. Changing it changes every derived SKU, so it never changes.
var AxisOrder = []AttributeAxis{AxisColor, AxisSize, AxisOrigin}

func ParseAxis(s string) (AttributeAxis, error) {
	switch AttributeAxis(s) {
	case AxisColor, AxisSize, AxisOrigin:
		return AttributeAxis(s), nil
	}
	return "", fmt.Errorf("unknown attribute axis %q", s)
}

// AttributeValue is one entry of a color/size/origin pool. Immutable once
// fetched; identity is ID.
type AttributeValue struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
