package service

import (
	"context"
	"errors"
	"testing"

	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRUDServicePublishesChanges(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec := &recorder{}
	svc := NewCRUDService(store.Vendors, "vendors", rec)

	v := &model.Vendor{Brand: model.BrandBlorcs, Name: "Acme", Category: "Software", Status: model.VendorActive}
	require.NoError(t, svc.Create(ctx, v))

	_, err := svc.Update(ctx, v.ID, &model.Vendor{Notes: "renewed"}, []string{"Notes"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got := rec.all()
	require.Len(t, got, 3)
	assert.Equal(t, []string{events.ActionCreated, events.ActionUpdated, events.ActionDeleted},
		[]string{got[0].Action, got[1].Action, got[2].Action})
	for _, e := range got {
		assert.Equal(t, "vendors", e.Resource)
		assert.Equal(t, v.ID, e.ID)
		assert.Equal(t, model.BrandBlorcs, e.Brand)
	}
}

func TestCRUDServiceDeleteMissingPublishesNothing(t *testing.T) {
	store := newTestStore(t)
	rec := &recorder{}
	svc := NewCRUDService(store.Vendors, "vendors", rec)

	deleted, err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, rec.all())
}

func TestCRUDServiceBeforeWriteSeesMergedRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewCRUDService(store.Vendors, "vendors", nil)

	errBlocked := errors.New("blocked")
	var seen []model.Vendor
	svc.BeforeWrite(func(_ context.Context, _, v *model.Vendor) error {
		seen = append(seen, *v)
		if v.Status == model.VendorInactive {
			return errBlocked
		}
		return nil
	})

	v := &model.Vendor{Brand: model.BrandShaypops, Name: "Acme", Category: "Software", Status: model.VendorActive}
	require.NoError(t, svc.Create(ctx, v))

	_, err := svc.Update(ctx, v.ID, &model.Vendor{Status: model.VendorInactive}, []string{"Status"})
	require.ErrorIs(t, err, errBlocked)

	require.Len(t, seen, 2)
	assert.Equal(t, "Acme", seen[1].Name)
	assert.Equal(t, model.VendorInactive, seen[1].Status)

	stored, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VendorActive, stored.Status)

	_, err = svc.Update(ctx, 999, &model.Vendor{Status: model.VendorActive}, []string{"Status"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMerge(t *testing.T) {
	current := &model.Vendor{Name: "Acme", Category: "Software", Rating: 4.5}
	patch := &model.Vendor{Name: "ignored", Rating: 0}

	merged := Merge(current, patch, []string{"Rating", "Unknown"})
	assert.Equal(t, "Acme", merged.Name)
	assert.Equal(t, 0.0, merged.Rating)
	assert.Equal(t, 4.5, current.Rating)
}

func TestBrandOf(t *testing.T) {
	assert.Equal(t, model.BrandTechnova, BrandOf(&model.Vendor{Brand: model.BrandTechnova}))
	assert.Equal(t, "", BrandOf(&model.Brand{Code: model.BrandTechnova}))
	assert.Equal(t, "", BrandOf(3))
}
