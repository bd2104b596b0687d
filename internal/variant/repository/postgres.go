package repository

import (
	"context"
	"fmt"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListByProduct(ctx context.Context, productID string) ([]model.Variant, error) {
	var variants []model.Variant
	query := `
        SELECT * FROM product_variants
        WHERE product_id = $1
        ORDER BY sku ASC
    `
	err := r.DB.SelectContext(ctx, &variants, query, productID)
	return variants, err
}

func (r *PGRepository) ReplaceForProduct(ctx context.Context, productID string, hasVariants bool, variants []model.Variant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_variants WHERE product_id = $1", productID); err != nil {
		return fmt.Errorf("failed to clear previous variants: %w", err)
	}

	insertQuery := `
        INSERT INTO product_variants (
            id, product_id, sku, price, stock_quantity,
            color_id, size_id, origin_id, image_url, is_active,
            created_at, updated_at
        )
        VALUES (
            :id, :product_id, :sku, :price, :stock_quantity,
            :color_id, :size_id, :origin_id, :image_url, :is_active,
            :created_at, :updated_at
        )
    `
	for i := range variants {
		if _, err := tx.NamedExecContext(ctx, insertQuery, &variants[i]); err != nil {
			return fmt.Errorf("failed to insert variant %s: %w", variants[i].SKU, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE products SET has_variants = $1, updated_at = NOW() WHERE id = $2",
		hasVariants, productID,
	); err != nil {
		return fmt.Errorf("failed to update has_variants: %w", err)
	}

	return tx.Commit()
}
