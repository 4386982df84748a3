// Package repository defines the persistence interfaces and their gorm implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)

// Filter narrows a List call. Brand is ignored when empty or "all";
// Where holds exact-match column conditions.
type Filter struct {
	Brand string
	Where map[string]any
}

// ByBrand is a shorthand for a brand-only filter.
func ByBrand(brand string) Filter {
	return Filter{Brand: brand}
}

// CRUDRepository is the storage contract shared by every entity table.
type CRUDRepository[T any] interface {
	List(ctx context.Context, f Filter) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	// Update writes only the named struct fields of patch and returns the merged row.
	Update(ctx context.Context, id uint, patch *T, fields []string) (*T, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type crudRepository[T any] struct {
	db          *gorm.DB
	brandColumn string
}

// NewCRUDRepository returns a gorm backed CRUDRepository filtering brands on the "brand" column.
func NewCRUDRepository[T any](db *gorm.DB) CRUDRepository[T] {
	return &crudRepository[T]{db: db, brandColumn: "brand"}
}

// NewUnscopedRepository returns a CRUDRepository for a table without a brand column.
func NewUnscopedRepository[T any](db *gorm.DB) CRUDRepository[T] {
	return &crudRepository[T]{db: db}
}

func (r *crudRepository[T]) List(ctx context.Context, f Filter) ([]T, error) {
	q := r.db.WithContext(ctx).Model(new(T))
	if r.brandColumn != "" && f.Brand != "" && f.Brand != "all" {
		q = q.Where(r.brandColumn+" = ?", f.Brand)
	}
	if len(f.Where) > 0 {
		q = q.Where(f.Where)
	}
	rows := make([]T, 0)
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *crudRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *crudRepository[T]) Update(ctx context.Context, id uint, patch *T, fields []string) (*T, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(new(T)).
			Where("id = ?", id).
			Select(fields).
			Updates(patch).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return r.Get(ctx, id)
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
