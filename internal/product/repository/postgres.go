package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, merchant_id, category_id, brand_id, sku, slug, name, description,
            base_price, image_url, has_variants, is_active, created_at, updated_at
        )
        VALUES (
            :id, :merchant_id, :category_id, :brand_id, :sku, :slug, :name, :description,
            :base_price, :image_url, :has_variants, :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.MerchantID != "" {
		conditions = append(conditions, "merchant_id = :merchant_id")
		args["merchant_id"] = f.MerchantID
	}
	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.BrandID != "" {
		conditions = append(conditions, "brand_id = :brand_id")
		args["brand_id"] = f.BrandID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR sku ILIKE :search OR slug ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	orderBy := "created_at DESC"
	if f.SortBy != "" {
		// Whitelist sortable fields
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "base_price"
		case "created_at":
			orderBy = "created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)

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

	err = nstmt.SelectContext(ctx, &products, args)
	if err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            brand_id = :brand_id,
            sku = :sku,
            slug = :slug,
            name = :name,
            description = :description,
            base_price = :base_price,
            image_url = :image_url,
            has_variants = :has_variants,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND merchant_id = :merchant_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	// Variants cascade via FK.
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, merchantID, sku, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE merchant_id = $1 AND sku = $2`
	args := []interface{}{merchantID, sku}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	err := r.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
