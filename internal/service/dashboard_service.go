package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/log"
)

const dashboardCachePrefix = "dashboard:"

// ExpiryWindow is how far ahead a license expiry counts as "expiring".
const ExpiryWindow = 30 * 24 * time.Hour

// DashboardMetrics are the headline counters of the vendor dashboard.
type DashboardMetrics struct {
	TotalVendors      int     `json:"totalVendors"`
	ActiveVendors     int     `json:"activeVendors"`
	TotalLicenses     int     `json:"totalLicenses"`
	ActiveLicenses    int     `json:"activeLicenses"`
	ExpiringLicenses  int     `json:"expiringLicenses"`
	TotalLicenseCost  float64 `json:"totalLicenseCost"`
	TotalIncidents    int     `json:"totalIncidents"`
	OpenIncidents     int     `json:"openIncidents"`
	CriticalIncidents int     `json:"criticalIncidents"`
	ResolvedIncidents int     `json:"resolvedIncidents"`
}

type VendorKPIs struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	TotalContractValue float64 `json:"totalContractValue"`
	AverageRating      float64 `json:"averageRating"`
}

type LicensingKPIs struct {
	Licenses        int     `json:"licenses"`
	ActiveLicenses  int     `json:"activeLicenses"`
	LicenseCost     float64 `json:"licenseCost"`
	Packs           int     `json:"packs"`
	PackCost        float64 `json:"packCost"`
	TotalSeats      int     `json:"totalSeats"`
	AssignedSeats   int     `json:"assignedSeats"`
	UtilizationRate float64 `json:"utilizationRate"`
	UserAssignments int     `json:"userAssignments"`
}

type ITILKPIs struct {
	Services            int     `json:"services"`
	OperationalServices int     `json:"operationalServices"`
	AverageAvailability float64 `json:"averageAvailability"`
	ConfigurationItems  int     `json:"configurationItems"`
	OpenIncidents       int     `json:"openIncidents"`
	CriticalIncidents   int     `json:"criticalIncidents"`
}

type RetailKPIs struct {
	Stores           int     `json:"stores"`
	OpenStores       int     `json:"openStores"`
	TotalSales       float64 `json:"totalSales"`
	TransactionCount int     `json:"transactionCount"`
	AverageTicket    float64 `json:"averageTicket"`
	Staff            int     `json:"staff"`
	LowStockItems    int     `json:"lowStockItems"`
}

type ManufacturingKPIs struct {
	Manufacturers         int     `json:"manufacturers"`
	Products              int     `json:"products"`
	ActiveOrders          int     `json:"activeOrders"`
	ShipmentsInTransit    int     `json:"shipmentsInTransit"`
	DelayedShipments      int     `json:"delayedShipments"`
	AverageOnTimeDelivery float64 `json:"averageOnTimeDelivery"`
	AverageDefectRate     float64 `json:"averageDefectRate"`
}

type FacilitiesKPIs struct {
	Facilities      int     `json:"facilities"`
	TotalCapacity   int     `json:"totalCapacity"`
	TotalOccupancy  int     `json:"totalOccupancy"`
	OccupancyRate   float64 `json:"occupancyRate"`
	OpenMaintenance int     `json:"openMaintenance"`
	MaintenanceCost float64 `json:"maintenanceCost"`
}

type SecurityKPIs struct {
	Policies              int     `json:"policies"`
	ActivePolicies        int     `json:"activePolicies"`
	OpenSecurityIncidents int     `json:"openSecurityIncidents"`
	AverageOverallScore   float64 `json:"averageOverallScore"`
}

type DocumentationKPIs struct {
	Documents     int     `json:"documents"`
	Published     int     `json:"published"`
	Drafts        int     `json:"drafts"`
	FeedbackCount int     `json:"feedbackCount"`
	AverageRating float64 `json:"averageRating"`
	TotalViews    int     `json:"totalViews"`
}

// HolisticKPIs summarises every domain for the executive overview.
type HolisticKPIs struct {
	Vendors       VendorKPIs        `json:"vendors"`
	Licensing     LicensingKPIs     `json:"licensing"`
	ITIL          ITILKPIs          `json:"itil"`
	Retail        RetailKPIs        `json:"retail"`
	Manufacturing ManufacturingKPIs `json:"manufacturing"`
	Facilities    FacilitiesKPIs    `json:"facilities"`
	Security      SecurityKPIs      `json:"security"`
	Documentation DocumentationKPIs `json:"documentation"`
}

// DashboardService computes the composite dashboard read models.
type DashboardService interface {
	Metrics(ctx context.Context, brand string) (*DashboardMetrics, error)
	HolisticKPIs(ctx context.Context, brand string) (*HolisticKPIs, error)
}

type dashboardService struct {
	store *repository.Store
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewDashboardService creates a DashboardService caching results for ttl (0 disables caching).
func NewDashboardService(store *repository.Store, cache repository.CacheRepository, ttl time.Duration) DashboardService {
	return &dashboardService{store: store, cache: cache, ttl: ttl}
}

// NewCacheInvalidator drops every cached dashboard payload when any row changes.
func NewCacheInvalidator(cache repository.CacheRepository) events.Publisher {
	return events.PublisherFunc(func(ctx context.Context, e events.Event) {
		if err := cache.DeletePrefix(ctx, dashboardCachePrefix); err != nil {
			log.Warnf("failed to invalidate dashboard cache after %s %s: %v", e.Resource, e.Action, err)
		}
	})
}

func cacheKey(kind, brand string) string {
	if brand == "" {
		brand = model.BrandAll
	}
	return fmt.Sprintf("%s%s:%s", dashboardCachePrefix, kind, brand)
}

// cached serves key from the cache, or computes and stores it.
func cached[T any](ctx context.Context, s *dashboardService, key string, compute func() (*T, error)) (*T, error) {
	if s.ttl > 0 {
		var hit T
		if ok, err := s.cache.Get(ctx, key, &hit); err != nil {
			log.Warnf("dashboard cache read failed: %v", err)
		} else if ok {
			return &hit, nil
		}
	}
	out, err := compute()
	if err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		if err := s.cache.Set(ctx, key, out, s.ttl); err != nil {
			log.Warnf("dashboard cache write failed: %v", err)
		}
	}
	return out, nil
}

func (s *dashboardService) Metrics(ctx context.Context, brand string) (*DashboardMetrics, error) {
	return cached(ctx, s, cacheKey("metrics", brand), func() (*DashboardMetrics, error) {
		f := repository.ByBrand(brand)
		vendors, err := s.store.Vendors.List(ctx, f)
		if err != nil {
			return nil, err
		}
		licenses, err := s.store.Licenses.List(ctx, f)
		if err != nil {
			return nil, err
		}
		incidents, err := s.store.Incidents.List(ctx, f)
		if err != nil {
			return nil, err
		}
		return ComputeMetrics(vendors, licenses, incidents, time.Now()), nil
	})
}

// ComputeMetrics reduces the three tables into DashboardMetrics as of now.
func ComputeMetrics(vendors []model.Vendor, licenses []model.License, incidents []model.Incident, now time.Time) *DashboardMetrics {
	m := &DashboardMetrics{
		TotalVendors:   len(vendors),
		TotalLicenses:  len(licenses),
		TotalIncidents: len(incidents),
	}
	for _, v := range vendors {
		if v.Status == model.VendorActive {
			m.ActiveVendors++
		}
	}
	horizon := now.Add(ExpiryWindow)
	for _, l := range licenses {
		m.TotalLicenseCost += l.Cost
		if l.Status != "active" {
			continue
		}
		m.ActiveLicenses++
		if l.ExpiryDate != nil && !l.ExpiryDate.After(horizon) {
			m.ExpiringLicenses++
		}
	}
	for _, i := range incidents {
		switch i.Status {
		case model.IncidentResolved, model.IncidentClosed:
			m.ResolvedIncidents++
		default:
			m.OpenIncidents++
		}
		if i.Severity == model.SeverityCritical {
			m.CriticalIncidents++
		}
	}
	return m
}

func (s *dashboardService) HolisticKPIs(ctx context.Context, brand string) (*HolisticKPIs, error) {
	return cached(ctx, s, cacheKey("holistic", brand), func() (*HolisticKPIs, error) {
		return s.computeHolistic(ctx, repository.ByBrand(brand))
	})
}

func (s *dashboardService) computeHolistic(ctx context.Context, f repository.Filter) (*HolisticKPIs, error) {
	var out HolisticKPIs
	st := s.store

	vendors, err := st.Vendors.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Vendors.Total = len(vendors)
	var ratingSum float64
	for _, v := range vendors {
		if v.Status == model.VendorActive {
			out.Vendors.Active++
		}
		out.Vendors.TotalContractValue += v.ContractValue
		ratingSum += v.Rating
	}
	out.Vendors.AverageRating = average(ratingSum, len(vendors))

	licenses, err := st.Licenses.List(ctx, f)
	if err != nil {
		return nil, err
	}
	packs, err := st.CorporateLicensePacks.List(ctx, f)
	if err != nil {
		return nil, err
	}
	assignments, err := st.UserLicenseAssignments.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Licensing.Licenses = len(licenses)
	for _, l := range licenses {
		if l.Status == "active" {
			out.Licensing.ActiveLicenses++
		}
		out.Licensing.LicenseCost += l.Cost
	}
	out.Licensing.Packs = len(packs)
	for _, p := range packs {
		out.Licensing.PackCost += p.TotalCost
		out.Licensing.TotalSeats += p.TotalLicenses
		out.Licensing.AssignedSeats += p.AssignedLicenses
	}
	out.Licensing.UtilizationRate = percent(out.Licensing.AssignedSeats, out.Licensing.TotalSeats)
	out.Licensing.UserAssignments = len(assignments)

	services, err := st.ItilServices.List(ctx, f)
	if err != nil {
		return nil, err
	}
	cis, err := st.ConfigurationItems.List(ctx, f)
	if err != nil {
		return nil, err
	}
	incidents, err := st.Incidents.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.ITIL.Services = len(services)
	var availability float64
	for _, svc := range services {
		if svc.Status == "operational" {
			out.ITIL.OperationalServices++
		}
		availability += svc.Availability
	}
	out.ITIL.AverageAvailability = average(availability, len(services))
	out.ITIL.ConfigurationItems = len(cis)
	for _, i := range incidents {
		if i.Status != model.IncidentResolved && i.Status != model.IncidentClosed {
			out.ITIL.OpenIncidents++
		}
		if i.Severity == model.SeverityCritical {
			out.ITIL.CriticalIncidents++
		}
	}

	stores, err := st.Stores.List(ctx, f)
	if err != nil {
		return nil, err
	}
	sales, err := st.StoreSales.List(ctx, f)
	if err != nil {
		return nil, err
	}
	staff, err := st.StoreStaff.List(ctx, f)
	if err != nil {
		return nil, err
	}
	inventory, err := st.StoreInventory.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Retail.Stores = len(stores)
	for _, store := range stores {
		if store.Status == "open" {
			out.Retail.OpenStores++
		}
	}
	for _, sale := range sales {
		out.Retail.TotalSales += sale.TotalSales
		out.Retail.TransactionCount += sale.TransactionCount
	}
	if out.Retail.TransactionCount > 0 {
		out.Retail.AverageTicket = out.Retail.TotalSales / float64(out.Retail.TransactionCount)
	}
	out.Retail.Staff = len(staff)
	for _, item := range inventory {
		if item.Quantity <= item.ReorderLevel {
			out.Retail.LowStockItems++
		}
	}

	manufacturers, err := st.Manufacturers.List(ctx, f)
	if err != nil {
		return nil, err
	}
	products, err := st.Products.List(ctx, f)
	if err != nil {
		return nil, err
	}
	orders, err := st.ProductionOrders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	shipments, err := st.Shipments.List(ctx, f)
	if err != nil {
		return nil, err
	}
	metrics, err := st.ManufacturingMetrics.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Manufacturing.Manufacturers = len(manufacturers)
	out.Manufacturing.Products = len(products)
	for _, o := range orders {
		if o.Status == "pending" || o.Status == "in_production" {
			out.Manufacturing.ActiveOrders++
		}
	}
	for _, sh := range shipments {
		switch sh.Status {
		case "in_transit":
			out.Manufacturing.ShipmentsInTransit++
		case "delayed":
			out.Manufacturing.DelayedShipments++
		}
	}
	var onTime, defects float64
	for _, m := range metrics {
		onTime += m.OnTimeDeliveryRate
		defects += m.DefectRate
	}
	out.Manufacturing.AverageOnTimeDelivery = average(onTime, len(metrics))
	out.Manufacturing.AverageDefectRate = average(defects, len(metrics))

	facilities, err := st.Facilities.List(ctx, f)
	if err != nil {
		return nil, err
	}
	requests, err := st.MaintenanceRequests.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Facilities.Facilities = len(facilities)
	for _, fac := range facilities {
		out.Facilities.TotalCapacity += fac.Capacity
		out.Facilities.TotalOccupancy += fac.Occupancy
	}
	out.Facilities.OccupancyRate = percent(out.Facilities.TotalOccupancy, out.Facilities.TotalCapacity)
	for _, r := range requests {
		if r.Status != "completed" && r.Status != "cancelled" {
			out.Facilities.OpenMaintenance++
		}
		out.Facilities.MaintenanceCost += r.Cost
	}

	policies, err := st.ZeroTrustPolicies.List(ctx, f)
	if err != nil {
		return nil, err
	}
	secIncidents, err := st.SecurityIncidents.List(ctx, f)
	if err != nil {
		return nil, err
	}
	ztKpis, err := st.ZeroTrustKpis.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Security.Policies = len(policies)
	for _, p := range policies {
		if p.Status == "active" {
			out.Security.ActivePolicies++
		}
	}
	for _, i := range secIncidents {
		if isOpenSecurityIncident(i.Status) {
			out.Security.OpenSecurityIncidents++
		}
	}
	var overall float64
	for _, k := range ztKpis {
		overall += k.OverallScore
	}
	out.Security.AverageOverallScore = average(overall, len(ztKpis))

	docs, err := st.Documents.List(ctx, f)
	if err != nil {
		return nil, err
	}
	feedback, err := st.DocumentFeedback.List(ctx, f)
	if err != nil {
		return nil, err
	}
	analytics, err := st.DocumentAnalytics.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out.Documentation.Documents = len(docs)
	for _, d := range docs {
		switch d.Status {
		case model.DocumentPublished:
			out.Documentation.Published++
		case model.DocumentDraft:
			out.Documentation.Drafts++
		}
	}
	out.Documentation.FeedbackCount = len(feedback)
	var ratings, rated float64
	for _, fb := range feedback {
		if fb.Rating > 0 {
			ratings += float64(fb.Rating)
			rated++
		}
	}
	if rated > 0 {
		out.Documentation.AverageRating = round2(ratings / rated)
	}
	for _, a := range analytics {
		out.Documentation.TotalViews += a.Views
	}

	return &out, nil
}

func isOpenSecurityIncident(status string) bool {
	return status != "resolved" && status != "closed"
}

func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
