package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/stock/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListStockItems(ctx context.Context, f *dto.StockFilters) ([]model.StockItem, error) {
	conditions := []string{"v.is_active = true"}
	args := map[string]interface{}{}

	if f.MerchantID != "" {
		conditions = append(conditions, "p.merchant_id = :merchant_id")
		args["merchant_id"] = f.MerchantID
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "p.category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.BrandID != "" {
		conditions = append(conditions, "p.brand_id = :brand_id")
		args["brand_id"] = f.BrandID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(p.name ILIKE :search OR v.sku ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	query := `
        SELECT
            v.id AS variant_id,
            v.sku,
            v.price,
            v.stock_quantity,
            c.name AS color_name,
            s.name AS size_name,
            o.name AS origin_name,
            COALESCE(p.id, '') AS product_id,
            COALESCE(p.name, '') AS product_name,
            p.image_url AS product_thumbnail,
            cat.name AS category_name,
            b.name AS brand_name
        FROM product_variants v
        LEFT JOIN products p ON p.id = v.product_id
        LEFT JOIN colors c ON c.id = v.color_id
        LEFT JOIN sizes s ON s.id = v.size_id
        LEFT JOIN origins o ON o.id = v.origin_id
        LEFT JOIN categories cat ON cat.id = p.category_id
        LEFT JOIN brands b ON b.id = p.brand_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY p.name ASC, v.sku ASC
    `

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var items []model.StockItem
	err = nstmt.SelectContext(ctx, &items, args)
	return items, err
}

func (r *PGRepository) FindVariantByID(ctx context.Context, variantID string) (*model.Variant, error) {
	var v model.Variant
	err := r.DB.GetContext(ctx, &v, `SELECT * FROM product_variants WHERE id = $1 LIMIT 1`, variantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) ApplyMovement(ctx context.Context, variantID string, newQuantity int, movement *model.StockMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE product_variants SET stock_quantity = $1, updated_at = NOW() WHERE id = $2",
		newQuantity, variantID,
	); err != nil {
		return fmt.Errorf("failed to update variant stock: %w", err)
	}

	insertQuery := `
        INSERT INTO stock_movements (
            id, merchant_id, product_id, variant_id,
            movement_type, quantity_change, quantity_before, quantity_after,
            reference_type, reference_id, notes, created_by, created_at
        )
        VALUES (
            :id, :merchant_id, :product_id, :variant_id,
            :movement_type, :quantity_change, :quantity_before, :quantity_after,
            :reference_type, :reference_id, :notes, :created_by, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, insertQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	var items []model.StockMovement
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.MerchantID != "" {
		conditions = append(conditions, "merchant_id = :merchant_id")
		args["merchant_id"] = f.MerchantID
	}
	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at < :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM stock_movements" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}
