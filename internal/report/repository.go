package report

import (
	"context"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
)

type Repository interface {
	// ListMovementRows returns one row per active variant of the merchant with
	// the opening balance (signed movement sum before periodStart) and the four
	// per-kind movement totals inside [periodStart, periodEnd).
	ListMovementRows(ctx context.Context, merchantID string, periodStart, periodEnd time.Time) ([]dto.VariantMovementRecord, error)
}
