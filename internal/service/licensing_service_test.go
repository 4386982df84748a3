package service

import (
	"context"
	"testing"
	"time"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseResolver(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	resolver := NewLicenseResolver(store)

	pack := &model.CorporateLicensePack{Brand: model.BrandBlorcs, VendorName: "Adobe", ProductName: "CC", TotalLicenses: 10, TotalCost: 900}
	require.NoError(t, store.CorporateLicensePacks.Create(ctx, pack))
	ent := &model.EntitlementLicense{Brand: model.BrandBlorcs, PackID: pack.ID, ProductName: "CC"}
	require.NoError(t, store.EntitlementLicenses.Create(ctx, ent))

	got, err := resolver.Resolve(ctx, model.LicenseRef{Kind: model.LicenseKindPack, ID: pack.ID})
	require.NoError(t, err)
	require.NotNil(t, got.Pack)
	assert.Nil(t, got.Entitlement)
	assert.Nil(t, got.Specialized)
	assert.Equal(t, "Adobe", got.Pack.VendorName)

	got, err = resolver.Resolve(ctx, model.LicenseRef{Kind: model.LicenseKindEntitlement, ID: ent.ID})
	require.NoError(t, err)
	require.NotNil(t, got.Entitlement)
	assert.Nil(t, got.Pack)

	_, err = resolver.Resolve(ctx, model.LicenseRef{Kind: model.LicenseKindSpecialized, ID: 99})
	assert.ErrorIs(t, err, ErrInvalidLicenseRef)

	_, err = resolver.Resolve(ctx, model.LicenseRef{Kind: "floating", ID: pack.ID})
	assert.ErrorIs(t, err, ErrInvalidLicenseRef)
}

func TestLicenseResolverGuardsAssignments(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	crud := NewCRUD(store, nil)
	resolver := NewLicenseResolver(store)
	resolver.Guard(crud.UserLicenseAssignments)

	pack := &model.CorporateLicensePack{Brand: model.BrandBlorcs, VendorName: "Adobe", ProductName: "CC", TotalLicenses: 10, TotalCost: 900}
	require.NoError(t, store.CorporateLicensePacks.Create(ctx, pack))

	bad := &model.UserLicenseAssignment{Brand: model.BrandBlorcs, UserID: 1, LicenseType: model.LicenseKindEntitlement, LicenseID: pack.ID}
	assert.ErrorIs(t, crud.UserLicenseAssignments.Create(ctx, bad), ErrInvalidLicenseRef)

	good := &model.UserLicenseAssignment{Brand: model.BrandBlorcs, UserID: 1, LicenseType: model.LicenseKindPack, LicenseID: pack.ID}
	require.NoError(t, crud.UserLicenseAssignments.Create(ctx, good))

	_, err := crud.UserLicenseAssignments.Update(ctx, good.ID,
		&model.UserLicenseAssignment{LicenseType: model.LicenseKindSpecialized}, []string{"LicenseType"})
	assert.ErrorIs(t, err, ErrInvalidLicenseRef)

	resolved, err := resolver.ForAssignment(ctx, good.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LicenseKindPack, resolved.Kind)
	assert.Equal(t, pack.ID, resolved.Pack.ID)
}

func TestAssignmentOfDeletedLicense(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	crud := NewCRUD(store, nil)
	resolver := NewLicenseResolver(store)
	resolver.Guard(crud.UserLicenseAssignments)

	pack := &model.CorporateLicensePack{Brand: model.BrandBlorcs, VendorName: "Adobe", ProductName: "CC", TotalLicenses: 10, TotalCost: 900}
	require.NoError(t, store.CorporateLicensePacks.Create(ctx, pack))
	a := &model.UserLicenseAssignment{Brand: model.BrandBlorcs, UserID: 1, LicenseType: model.LicenseKindPack, LicenseID: pack.ID}
	require.NoError(t, crud.UserLicenseAssignments.Create(ctx, a))

	deleted, err := crud.CorporateLicensePacks.Delete(ctx, pack.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = resolver.ForAssignment(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidLicenseRef)

	updated, err := crud.UserLicenseAssignments.Update(ctx, a.ID,
		&model.UserLicenseAssignment{Status: "revoked", Notes: "pack cancelled"}, []string{"Notes", "Status"})
	require.NoError(t, err)
	assert.Equal(t, "revoked", updated.Status)
	assert.Equal(t, "pack cancelled", updated.Notes)

	// Re-pointing at another missing row is still rejected.
	_, err = crud.UserLicenseAssignments.Update(ctx, a.ID,
		&model.UserLicenseAssignment{LicenseID: pack.ID + 100}, []string{"LicenseID"})
	assert.ErrorIs(t, err, ErrInvalidLicenseRef)
}

func TestLicensingAnalytics(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := &licensingService{store: store, now: func() time.Time { return now }}

	for _, p := range []model.CorporateLicensePack{
		{Brand: model.BrandBlorcs, VendorName: "Microsoft", ProductName: "M365", TotalLicenses: 120, AssignedLicenses: 90, TotalCost: 68400, RenewalDate: model.TimePtr(now.Add(45 * 24 * time.Hour))},
		{Brand: model.BrandBlorcs, VendorName: "Adobe", ProductName: "CC", TotalLicenses: 40, AssignedLicenses: 10, TotalCost: 28800, RenewalDate: model.TimePtr(now.Add(120 * 24 * time.Hour))},
		{Brand: model.BrandShaypops, VendorName: "Slack", ProductName: "Pro", TotalLicenses: 10, AssignedLicenses: 10, TotalCost: 900},
	} {
		p := p
		require.NoError(t, store.CorporateLicensePacks.Create(ctx, &p))
	}

	a, err := svc.Analytics(ctx, model.BrandBlorcs)
	require.NoError(t, err)
	assert.Equal(t, 2, a.TotalPacks)
	assert.Equal(t, 160, a.TotalLicenses)
	assert.Equal(t, 100, a.AssignedLicenses)
	assert.Equal(t, 60, a.AvailableLicenses)
	assert.Equal(t, 62.5, a.UtilizationRate)
	assert.Equal(t, 97200.0, a.TotalCost)
	require.Len(t, a.Packs, 2)
	assert.Equal(t, 75.0, a.Packs[0].UtilizationRate)
	assert.Equal(t, 25.0, a.Packs[1].UtilizationRate)
	require.Len(t, a.UpcomingRenewals, 1)
	assert.Equal(t, "M365", a.UpcomingRenewals[0].ProductName)
}
