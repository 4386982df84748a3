// Package service holds the business logic between handlers and repositories.
package service

import (
	"context"
	"reflect"
	"time"

	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/repository"
)

type identified interface {
	PrimaryID() uint
}

// CRUDService wraps a CRUDRepository, running write hooks and publishing a
// change event after every successful write.
type CRUDService[T any] struct {
	repo      repository.CRUDRepository[T]
	resource  string
	publisher events.Publisher

	beforeWrite []func(ctx context.Context, current, entity *T) error
	afterWrite  []func(ctx context.Context, entity *T)
	afterDelete []func(ctx context.Context, id uint)
}

// NewCRUDService creates a service for resource (the plural route name used in events).
func NewCRUDService[T any](repo repository.CRUDRepository[T], resource string, publisher events.Publisher) *CRUDService[T] {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &CRUDService[T]{repo: repo, resource: resource, publisher: publisher}
}

// Resource returns the resource name.
func (s *CRUDService[T]) Resource() string { return s.resource }

// BeforeWrite registers a check run on the full entity before create and on
// the merged row before update. current is nil on create and the stored row on update.
func (s *CRUDService[T]) BeforeWrite(fn func(ctx context.Context, current, entity *T) error) {
	s.beforeWrite = append(s.beforeWrite, fn)
}

// AfterWrite registers a callback run after a successful create or update.
func (s *CRUDService[T]) AfterWrite(fn func(ctx context.Context, entity *T)) {
	s.afterWrite = append(s.afterWrite, fn)
}

// AfterDelete registers a callback run after a row was deleted.
func (s *CRUDService[T]) AfterDelete(fn func(ctx context.Context, id uint)) {
	s.afterDelete = append(s.afterDelete, fn)
}

func (s *CRUDService[T]) List(ctx context.Context, f repository.Filter) ([]T, error) {
	return s.repo.List(ctx, f)
}

func (s *CRUDService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *CRUDService[T]) Create(ctx context.Context, entity *T) error {
	for _, fn := range s.beforeWrite {
		if err := fn(ctx, nil, entity); err != nil {
			return err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return err
	}
	s.written(ctx, events.ActionCreated, entity)
	return nil
}

// Update applies the named fields of patch to row id and returns the merged row.
func (s *CRUDService[T]) Update(ctx context.Context, id uint, patch *T, fields []string) (*T, error) {
	if len(s.beforeWrite) > 0 {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		merged := Merge(current, patch, fields)
		for _, fn := range s.beforeWrite {
			if err := fn(ctx, current, merged); err != nil {
				return nil, err
			}
		}
	}
	updated, err := s.repo.Update(ctx, id, patch, fields)
	if err != nil {
		return nil, err
	}
	s.written(ctx, events.ActionUpdated, updated)
	return updated, nil
}

// Delete removes row id and reports whether it existed.
func (s *CRUDService[T]) Delete(ctx context.Context, id uint) (bool, error) {
	var brand string
	if current, err := s.repo.Get(ctx, id); err == nil {
		brand = BrandOf(current)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	for _, fn := range s.afterDelete {
		fn(ctx, id)
	}
	s.publisher.Publish(ctx, events.Event{
		Resource: s.resource,
		Action:   events.ActionDeleted,
		ID:       id,
		Brand:    brand,
		At:       time.Now().UTC(),
	})
	return true, nil
}

func (s *CRUDService[T]) written(ctx context.Context, action string, entity *T) {
	for _, fn := range s.afterWrite {
		fn(ctx, entity)
	}
	var id uint
	if e, ok := any(entity).(identified); ok {
		id = e.PrimaryID()
	}
	s.publisher.Publish(ctx, events.Event{
		Resource: s.resource,
		Action:   action,
		ID:       id,
		Brand:    BrandOf(entity),
		At:       time.Now().UTC(),
	})
}

// BrandOf returns the Brand field of a model, or "" for tables without one.
func BrandOf(entity any) string {
	v := reflect.Indirect(reflect.ValueOf(entity))
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("Brand")
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

// Merge returns a copy of current with the named fields taken from patch.
func Merge[T any](current, patch *T, fields []string) *T {
	merged := *current
	dst := reflect.ValueOf(&merged).Elem()
	src := reflect.ValueOf(patch).Elem()
	for _, name := range fields {
		if f := dst.FieldByName(name); f.IsValid() && f.CanSet() {
			f.Set(src.FieldByName(name))
		}
	}
	return &merged
}
