package service

import (
	"context"
	"testing"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDependencies(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewITILService(store)

	var ids []uint
	for _, name := range []string{"Email", "Directory", "DNS"} {
		s := &model.ItilService{Brand: model.BrandTechnova, Name: name}
		require.NoError(t, store.ItilServices.Create(ctx, s))
		ids = append(ids, s.ID)
	}
	email, directory, dns := ids[0], ids[1], ids[2]
	require.NoError(t, store.ServiceRelationships.Create(ctx, &model.ServiceRelationship{
		Brand: model.BrandTechnova, ParentServiceID: email, ChildServiceID: directory, RelationshipType: "depends_on",
	}))
	require.NoError(t, store.ServiceRelationships.Create(ctx, &model.ServiceRelationship{
		Brand: model.BrandTechnova, ParentServiceID: directory, ChildServiceID: dns, RelationshipType: "depends_on",
	}))

	edges, err := svc.ServiceDependencies(ctx, directory)
	require.NoError(t, err)
	require.Len(t, edges.Upstream, 1)
	require.Len(t, edges.Downstream, 1)
	assert.Equal(t, email, edges.Upstream[0].ParentServiceID)
	assert.Equal(t, dns, edges.Downstream[0].ChildServiceID)

	leaf, err := svc.ServiceDependencies(ctx, dns)
	require.NoError(t, err)
	assert.Len(t, leaf.Upstream, 1)
	assert.Empty(t, leaf.Downstream)

	_, err = svc.ServiceDependencies(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCIRelationships(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewITILService(store)

	web := &model.ConfigurationItem{Brand: model.BrandBlorcs, Name: "web-01", CIType: "server"}
	db := &model.ConfigurationItem{Brand: model.BrandBlorcs, Name: "db-01", CIType: "database"}
	require.NoError(t, store.ConfigurationItems.Create(ctx, web))
	require.NoError(t, store.ConfigurationItems.Create(ctx, db))
	require.NoError(t, store.CiRelationships.Create(ctx, &model.CiRelationship{
		Brand: model.BrandBlorcs, ParentCiID: web.ID, ChildCiID: db.ID, RelationshipType: "connects_to",
	}))

	edges, err := svc.CIRelationships(ctx, web.ID)
	require.NoError(t, err)
	assert.Empty(t, edges.Upstream)
	require.Len(t, edges.Downstream, 1)
	assert.Equal(t, db.ID, edges.Downstream[0].ChildCiID)
}

func TestAcknowledge(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec := &recorder{}
	svc := NewRetailService(NewCRUD(store, rec))

	msg := &model.CorporateMessage{Brand: model.BrandShaypops, Title: "Holiday hours", Content: "Open until 22:00"}
	require.NoError(t, store.CorporateMessages.Create(ctx, msg))
	shop := &model.Store{Brand: model.BrandShaypops, Name: "Downtown", StoreNumber: "S-001"}
	require.NoError(t, store.Stores.Create(ctx, shop))

	ack, err := svc.Acknowledge(ctx, msg.ID, AcknowledgeRequest{StoreID: shop.ID, AcknowledgedBy: "jordan"})
	require.NoError(t, err)
	assert.NotZero(t, ack.ID)
	assert.Equal(t, model.BrandShaypops, ack.Brand)
	assert.NotNil(t, ack.AcknowledgedAt)

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, "message-acknowledgments", got[0].Resource)

	_, err = svc.Acknowledge(ctx, msg.ID, AcknowledgeRequest{StoreID: 999, AcknowledgedBy: "jordan"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.Acknowledge(ctx, 999, AcknowledgeRequest{StoreID: shop.ID, AcknowledgedBy: "jordan"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestZeroTrustSummary(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewSecurityService(store)

	require.NoError(t, store.ZeroTrustKpis.Create(ctx, &model.ZeroTrustKpis{Brand: model.BrandTechnova, Period: "2024-01", IdentityScore: 80, OverallScore: 70}))
	require.NoError(t, store.ZeroTrustKpis.Create(ctx, &model.ZeroTrustKpis{Brand: model.BrandTechnova, Period: "2024-02", IdentityScore: 90, OverallScore: 75}))
	require.NoError(t, store.ZeroTrustPolicies.Create(ctx, &model.ZeroTrustPolicy{Brand: model.BrandTechnova, Name: "MFA", PolicyType: "identity", Status: "active", EnforcementMode: "enforce"}))
	require.NoError(t, store.ZeroTrustPolicies.Create(ctx, &model.ZeroTrustPolicy{Brand: model.BrandTechnova, Name: "Device", PolicyType: "device", Status: "active", EnforcementMode: "monitor"}))
	require.NoError(t, store.ZeroTrustPolicies.Create(ctx, &model.ZeroTrustPolicy{Brand: model.BrandTechnova, Name: "Geo", PolicyType: "network", Status: "draft"}))
	require.NoError(t, store.SecurityIncidents.Create(ctx, &model.SecurityIncident{Brand: model.BrandTechnova, Title: "Phish", Severity: "high", Status: "open"}))
	require.NoError(t, store.SecurityIncidents.Create(ctx, &model.SecurityIncident{Brand: model.BrandTechnova, Title: "Old", Severity: "high", Status: "closed"}))
	require.NoError(t, store.MfaFatigueMetrics.Create(ctx, &model.MfaFatigueMetrics{Brand: model.BrandTechnova, UserIdentifier: "a@technova.test", RiskScore: 70}))
	require.NoError(t, store.MfaFatigueMetrics.Create(ctx, &model.MfaFatigueMetrics{Brand: model.BrandTechnova, UserIdentifier: "b@technova.test", RiskScore: 20}))

	s, err := svc.ZeroTrustSummary(ctx, model.BrandTechnova)
	require.NoError(t, err)
	assert.Equal(t, 85.0, s.Scores.Identity)
	assert.Equal(t, 72.5, s.Scores.Overall)
	assert.Equal(t, 3, s.TotalPolicies)
	assert.Equal(t, 2, s.ActivePolicies)
	assert.Equal(t, 1, s.EnforcedPolicies)
	assert.Equal(t, 1, s.OpenIncidents)
	assert.Equal(t, map[string]int{"high": 1}, s.OpenIncidentsBySev)
	require.Len(t, s.HighRiskUsers, 1)
	assert.Equal(t, "a@technova.test", s.HighRiskUsers[0].UserIdentifier)
}

func TestHealthCheck(t *testing.T) {
	store := newTestStore(t)
	report := NewHealthService(store, nil).Check(context.Background())
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, StatusOK, report.Database)
	assert.Equal(t, StatusDisabled, report.Cache)
	assert.True(t, report.Healthy())
}

func TestHealthCheckReadsSchema(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	store := repository.NewStore(db)
	require.NoError(t, store.AutoMigrate(ctx))
	require.NoError(t, db.Migrator().DropTable(&model.Brand{}))

	report := NewHealthService(store, nil).Check(ctx)
	assert.False(t, report.Healthy())
	assert.Equal(t, StatusError, report.Database)
	assert.Equal(t, StatusError, report.Status)
}
