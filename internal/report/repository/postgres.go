package repository

import (
	"context"
	"time"

	"github.com/hvngo/stylehub-catalog-service/internal/report/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// ListMovementRows aggregates stock_movements per variant. Export rows are
// stored with negative quantity_change, so the export total takes the absolute
// value; the adjustment total stays signed.
func (r *PGRepository) ListMovementRows(ctx context.Context, merchantID string, periodStart, periodEnd time.Time) ([]dto.VariantMovementRecord, error) {
	query := `
        SELECT
            v.sku,
            COALESCE(p.name, '') AS product_name,
            c.name AS color_name,
            s.name AS size_name,
            o.name AS origin_name,
            v.price,
            COALESCE(SUM(m.quantity_change) FILTER (
                WHERE m.created_at < :period_start
            ), 0) AS opening_stock,
            COALESCE(SUM(m.quantity_change) FILTER (
                WHERE m.movement_type = 'import'
                  AND m.created_at >= :period_start AND m.created_at < :period_end
            ), 0) AS total_import,
            COALESCE(SUM(ABS(m.quantity_change)) FILTER (
                WHERE m.movement_type = 'export'
                  AND m.created_at >= :period_start AND m.created_at < :period_end
            ), 0) AS total_export,
            COALESCE(SUM(m.quantity_change) FILTER (
                WHERE m.movement_type = 'adjustment'
                  AND m.created_at >= :period_start AND m.created_at < :period_end
            ), 0) AS total_adjustment,
            COALESCE(SUM(m.quantity_change) FILTER (
                WHERE m.movement_type = 'return'
                  AND m.created_at >= :period_start AND m.created_at < :period_end
            ), 0) AS total_return
        FROM product_variants v
        LEFT JOIN products p ON p.id = v.product_id
        LEFT JOIN colors c ON c.id = v.color_id
        LEFT JOIN sizes s ON s.id = v.size_id
        LEFT JOIN origins o ON o.id = v.origin_id
        LEFT JOIN stock_movements m ON m.variant_id = v.id
        WHERE v.is_active = true AND p.merchant_id = :merchant_id
        GROUP BY v.id, v.sku, p.name, c.name, s.name, o.name, v.price
        ORDER BY p.name ASC, v.sku ASC
    `

	args := map[string]interface{}{
		"merchant_id":  merchantID,
		"period_start": periodStart,
		"period_end":   periodEnd,
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var rows []dto.VariantMovementRecord
	err = nstmt.SelectContext(ctx, &rows, args)
	return rows, err
}
