package repository

import (
	"context"
	"fmt"

	"github.com/hvngo/stylehub-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
)

// One table per axis; the pools are disjoint by construction.
var axisTables = map[model.AttributeAxis]string{
	model.AxisColor:  "colors",
	model.AxisSize:   "sizes",
	model.AxisOrigin: "origins",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func tableFor(axis model.AttributeAxis) (string, error) {
	table, ok := axisTables[axis]
	if !ok {
		return "", fmt.Errorf("no table for axis %q", axis)
	}
	return table, nil
}

func (r *PGRepository) ListByAxis(ctx context.Context, axis model.AttributeAxis) ([]model.AttributeValue, error) {
	table, err := tableFor(axis)
	if err != nil {
		return nil, err
	}

	var values []model.AttributeValue
	query := fmt.Sprintf("SELECT id, name FROM %s ORDER BY name ASC", table)
	err = r.DB.SelectContext(ctx, &values, query)
	return values, err
}

func (r *PGRepository) FindByIDs(ctx context.Context, axis model.AttributeAxis, ids []int64) ([]model.AttributeValue, error) {
	if len(ids) == 0 {
		return []model.AttributeValue{}, nil
	}

	table, err := tableFor(axis)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(fmt.Sprintf("SELECT id, name FROM %s WHERE id IN (?)", table), ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var values []model.AttributeValue
	err = r.DB.SelectContext(ctx, &values, query, args...)
	return values, err
}

func (r *PGRepository) Create(ctx context.Context, axis model.AttributeAxis, name string) (*model.AttributeValue, error) {
	table, err := tableFor(axis)
	if err != nil {
		return nil, err
	}

	value := model.AttributeValue{Name: name}
	query := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING id", table)
	if err := r.DB.GetContext(ctx, &value.ID, query, name); err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *PGRepository) Delete(ctx context.Context, axis model.AttributeAxis, id int64) error {
	table, err := tableFor(axis)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	return err
}
