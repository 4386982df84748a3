package repository

import (
	"context"
	"testing"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	store := NewStore(db)
	require.NoError(t, store.AutoMigrate(context.Background()))
	return store
}

func TestListFiltersByBrand(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, v := range []model.Vendor{
		{Brand: model.BrandBlorcs, Name: "Acme", Category: "Software", Status: model.VendorActive},
		{Brand: model.BrandBlorcs, Name: "Globex", Category: "Hardware", Status: model.VendorPending},
		{Brand: model.BrandTechnova, Name: "Initech", Category: "Cloud", Status: model.VendorActive},
	} {
		v := v
		require.NoError(t, store.Vendors.Create(ctx, &v))
	}

	all, err := store.Vendors.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	wildcard, err := store.Vendors.List(ctx, ByBrand(model.BrandAll))
	require.NoError(t, err)
	assert.Len(t, wildcard, 3)

	blorcs, err := store.Vendors.List(ctx, ByBrand(model.BrandBlorcs))
	require.NoError(t, err)
	require.Len(t, blorcs, 2)
	for _, v := range blorcs {
		assert.Equal(t, model.BrandBlorcs, v.Brand)
	}

	none, err := store.Vendors.List(ctx, ByBrand(model.BrandShaypops))
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestListWhereColumns(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.StoreStaff.Create(ctx, &model.StoreStaff{Brand: model.BrandShaypops, StoreID: 1, Name: "Ana", Position: "Manager"}))
	require.NoError(t, store.StoreStaff.Create(ctx, &model.StoreStaff{Brand: model.BrandShaypops, StoreID: 2, Name: "Ben", Position: "Associate"}))

	rows, err := store.StoreStaff.List(ctx, Filter{Brand: model.BrandShaypops, Where: map[string]any{"store_id": 2}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ben", rows[0].Name)
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	vendor := &model.Vendor{
		Brand:         model.BrandBlorcs,
		Name:          "Acme",
		Category:      "Software",
		Status:        model.VendorActive,
		ContractValue: 1250.50,
	}
	require.NoError(t, store.Vendors.Create(ctx, vendor))
	require.NotZero(t, vendor.ID)
	assert.False(t, vendor.CreatedAt.IsZero())

	got, err := store.Vendors.Get(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, 1250.50, got.ContractValue)
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Vendors.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMergesOnlySelectedFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	vendor := &model.Vendor{Brand: model.BrandBlorcs, Name: "Acme", Category: "Software", Status: model.VendorActive, Rating: 4.5}
	require.NoError(t, store.Vendors.Create(ctx, vendor))

	patch := &model.Vendor{Status: model.VendorInactive}
	updated, err := store.Vendors.Update(ctx, vendor.ID, patch, []string{"Status"})
	require.NoError(t, err)
	assert.Equal(t, model.VendorInactive, updated.Status)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "Software", updated.Category)
	assert.Equal(t, 4.5, updated.Rating)
}

func TestUpdateCanClearBooleans(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	member := &model.VendorTeamMember{Brand: model.BrandBlorcs, VendorID: 1, Name: "Kim", IsPrimary: true}
	require.NoError(t, store.VendorTeamMembers.Create(ctx, member))

	updated, err := store.VendorTeamMembers.Update(ctx, member.ID, &model.VendorTeamMember{IsPrimary: false}, []string{"IsPrimary"})
	require.NoError(t, err)
	assert.False(t, updated.IsPrimary)
	assert.Equal(t, "Kim", updated.Name)
}

func TestUpdateMissingReturnsErrNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Vendors.Update(context.Background(), 42, &model.Vendor{Name: "x"}, []string{"Name"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	incident := &model.Incident{Brand: model.BrandTechnova, Title: "Outage", Severity: model.SeverityHigh, Status: model.IncidentOpen}
	require.NoError(t, store.Incidents.Create(ctx, incident))

	deleted, err := store.Incidents.Delete(ctx, incident.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = store.Incidents.Get(ctx, incident.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = store.Incidents.Delete(ctx, incident.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStringListColumnsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	msg := &model.CorporateMessage{
		Brand:        model.BrandShaypops,
		Title:        "Holiday hours",
		Content:      "Stores close at 6pm.",
		TargetStores: model.Strings("101", "102"),
	}
	require.NoError(t, store.CorporateMessages.Create(ctx, msg))

	got, err := store.CorporateMessages.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102"}, []string(got.TargetStores))
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Documents.Create(ctx, &model.Document{Brand: model.BrandTechnova, Title: "Runbook", Version: 1}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	docs, err := store.Documents.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))

	require.NoError(t, store.db.Migrator().DropTable(&model.Brand{}))
	assert.Error(t, store.Ping(context.Background()))
}
