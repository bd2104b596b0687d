package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/hvngo/stylehub-catalog-service/internal/taxonomy/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateCategory(ctx context.Context, cat *model.Category) error {
	query := `
        INSERT INTO categories (
            id, merchant_id, name, description, image_url, sort_order, is_active,
            created_at, updated_at
        )
        VALUES (
            :id, :merchant_id, :name, :description, :image_url, :sort_order, :is_active,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, cat)
	return err
}

func (r *PGRepository) FindCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	err := r.DB.GetContext(ctx, &cat, `SELECT * FROM categories WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *PGRepository) FindCategories(ctx context.Context, f *dto.TaxonomyFilters) ([]model.Category, int, error) {
	var categories []model.Category
	count, whereClause, args, err := r.countFiltered(ctx, "categories", f)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM categories" + whereClause + " ORDER BY sort_order ASC, name ASC"
	query = appendPagination(query, f.Page, f.PageSize)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &categories, args)
	return categories, count, err
}

func (r *PGRepository) UpdateCategory(ctx context.Context, cat *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            description = :description,
            image_url = :image_url,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id AND merchant_id = :merchant_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, cat)
	return err
}

func (r *PGRepository) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}

func (r *PGRepository) CreateBrand(ctx context.Context, brand *model.Brand) error {
	query := `
        INSERT INTO brands (id, merchant_id, name, logo_url, is_active, created_at, updated_at)
        VALUES (:id, :merchant_id, :name, :logo_url, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, brand)
	return err
}

func (r *PGRepository) FindBrands(ctx context.Context, f *dto.TaxonomyFilters) ([]model.Brand, int, error) {
	var brands []model.Brand
	count, whereClause, args, err := r.countFiltered(ctx, "brands", f)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM brands" + whereClause + " ORDER BY name ASC"
	query = appendPagination(query, f.Page, f.PageSize)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &brands, args)
	return brands, count, err
}

func (r *PGRepository) DeleteBrand(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM brands WHERE id = $1", id)
	return err
}

func (r *PGRepository) countFiltered(ctx context.Context, table string, f *dto.TaxonomyFilters) (int, string, map[string]interface{}, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.MerchantID != "" {
		conditions = append(conditions, "merchant_id = :merchant_id")
		args["merchant_id"] = f.MerchantID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM "+table+whereClause, args)
	if err != nil {
		return 0, "", nil, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	return count, whereClause, args, nil
}

func appendPagination(query string, page, pageSize int) string {
	if pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	return query + fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
}
