package seed

import (
	"context"
	"testing"
	"time"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	store := repository.NewStore(db)
	require.NoError(t, store.AutoMigrate(context.Background()))
	return store
}

func TestRunSeedsBlorcsLicensePacks(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	res, err := Run(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, res.Failed)
	assert.Positive(t, res.Inserted)

	packs, err := store.CorporateLicensePacks.List(ctx, repository.ByBrand(model.BrandBlorcs))
	require.NoError(t, err)
	require.Len(t, packs, 3)

	var total float64
	for _, p := range packs {
		assert.Equal(t, model.BrandBlorcs, p.Brand)
		total += p.TotalCost
	}
	assert.InDelta(t, 98100.00, total, 0.001)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	first, err := Run(ctx, store)
	require.NoError(t, err)
	vendors, err := store.Vendors.List(ctx, repository.Filter{})
	require.NoError(t, err)

	second, err := Run(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, second.Inserted)
	assert.ElementsMatch(t, model.DemoBrands, second.Skipped)

	again, err := store.Vendors.List(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Len(t, again, len(vendors))
	assert.Positive(t, first.Inserted)
}

func TestRunWiresRelations(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := run(ctx, store, now)
	require.NoError(t, err)

	brands, err := store.Brands.List(ctx, repository.Filter{})
	require.NoError(t, err)
	assert.Len(t, brands, 3)

	services, err := store.ItilServices.List(ctx, repository.ByBrand(model.BrandTechnova))
	require.NoError(t, err)
	require.Len(t, services, 3)
	edges, err := store.ServiceRelationships.List(ctx, repository.Filter{Where: map[string]any{"parent_service_id": services[0].ID}})
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	assignments, err := store.UserLicenseAssignments.List(ctx, repository.ByBrand(model.BrandBlorcs))
	require.NoError(t, err)
	require.NotEmpty(t, assignments)
	_, err = store.EntitlementLicenses.Get(ctx, assignments[0].LicenseID)
	assert.NoError(t, err)

	kpis, err := store.ZeroTrustKpis.List(ctx, repository.ByBrand(model.BrandTechnova))
	require.NoError(t, err)
	require.Len(t, kpis, 2)
	assert.Equal(t, "2024-05", kpis[1].Period)
}

func TestRunSkipsExistingBrand(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.Brands.Create(ctx, &model.Brand{Code: model.BrandShaypops, Name: "Shaypops"}))

	res, err := Run(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, []string{model.BrandShaypops}, res.Skipped)

	stores, err := store.Stores.List(ctx, repository.ByBrand(model.BrandShaypops))
	require.NoError(t, err)
	assert.Empty(t, stores)
}
