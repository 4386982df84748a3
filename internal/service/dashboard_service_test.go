package service

import (
	"context"
	"testing"
	"time"

	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	vendors := []model.Vendor{
		{Status: model.VendorActive},
		{Status: model.VendorActive},
		{Status: model.VendorPending},
	}
	licenses := []model.License{
		{Status: "active", Cost: 100, ExpiryDate: model.TimePtr(now.Add(10 * 24 * time.Hour))},
		{Status: "active", Cost: 200, ExpiryDate: model.TimePtr(now.Add(30 * 24 * time.Hour))},
		{Status: "active", Cost: 300, ExpiryDate: model.TimePtr(now.Add(31 * 24 * time.Hour))},
		{Status: "active", Cost: 400},
		{Status: "expired", Cost: 50, ExpiryDate: model.TimePtr(now.Add(-time.Hour))},
	}
	incidents := []model.Incident{
		{Status: model.IncidentOpen, Severity: model.SeverityCritical},
		{Status: model.IncidentInvestigating, Severity: model.SeverityLow},
		{Status: model.IncidentResolved, Severity: model.SeverityCritical},
		{Status: model.IncidentClosed, Severity: model.SeverityMedium},
	}

	m := ComputeMetrics(vendors, licenses, incidents, now)
	assert.Equal(t, DashboardMetrics{
		TotalVendors:      3,
		ActiveVendors:     2,
		TotalLicenses:     5,
		ActiveLicenses:    4,
		ExpiringLicenses:  2,
		TotalLicenseCost:  1050,
		TotalIncidents:    4,
		OpenIncidents:     2,
		CriticalIncidents: 2,
		ResolvedIncidents: 2,
	}, *m)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, nil, nil, time.Now())
	assert.Equal(t, DashboardMetrics{}, *m)
}

func TestDashboardMetricsFiltersByBrandAndCaches(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	cache := newMemoryCache()
	svc := NewDashboardService(store, cache, time.Minute)

	require.NoError(t, store.Vendors.Create(ctx, &model.Vendor{Brand: model.BrandBlorcs, Name: "A", Category: "x", Status: model.VendorActive}))
	require.NoError(t, store.Vendors.Create(ctx, &model.Vendor{Brand: model.BrandShaypops, Name: "B", Category: "x", Status: model.VendorActive}))

	m, err := svc.Metrics(ctx, model.BrandBlorcs)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalVendors)
	assert.Equal(t, 1, cache.len())

	// A write behind the cache's back is not visible until invalidation.
	require.NoError(t, store.Vendors.Create(ctx, &model.Vendor{Brand: model.BrandBlorcs, Name: "C", Category: "x", Status: model.VendorPending}))
	m, err = svc.Metrics(ctx, model.BrandBlorcs)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalVendors)

	NewCacheInvalidator(cache).Publish(ctx, events.Event{Resource: "vendors", Action: events.ActionCreated})
	assert.Equal(t, 0, cache.len())

	m, err = svc.Metrics(ctx, model.BrandBlorcs)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalVendors)
	assert.Equal(t, 1, m.ActiveVendors)

	all, err := svc.Metrics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalVendors)
}

func TestHolisticKPIs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewDashboardService(store, newMemoryCache(), 0)

	require.NoError(t, store.CorporateLicensePacks.Create(ctx, &model.CorporateLicensePack{
		Brand: model.BrandTechnova, VendorName: "Microsoft", ProductName: "M365", TotalLicenses: 100, AssignedLicenses: 75, TotalCost: 1000,
	}))
	require.NoError(t, store.Facilities.Create(ctx, &model.Facility{
		Brand: model.BrandTechnova, Name: "HQ", FacilityType: "office", Capacity: 200, Occupancy: 50,
	}))
	require.NoError(t, store.StoreInventory.Create(ctx, &model.StoreInventory{
		Brand: model.BrandTechnova, StoreID: 1, ProductName: "Widget", SKU: "W-1", Quantity: 3, ReorderLevel: 5,
	}))
	require.NoError(t, store.Documents.Create(ctx, &model.Document{
		Brand: model.BrandTechnova, Title: "Runbook", Status: model.DocumentPublished,
	}))

	k, err := svc.HolisticKPIs(ctx, model.BrandTechnova)
	require.NoError(t, err)
	assert.Equal(t, 1, k.Licensing.Packs)
	assert.Equal(t, 75.0, k.Licensing.UtilizationRate)
	assert.Equal(t, 25.0, k.Facilities.OccupancyRate)
	assert.Equal(t, 1, k.Retail.LowStockItems)
	assert.Equal(t, 1, k.Documentation.Published)

	other, err := svc.HolisticKPIs(ctx, model.BrandBlorcs)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Licensing.Packs)
	assert.Equal(t, 0.0, other.Licensing.UtilizationRate)
}
