// Package seed inserts demo data for the three fictitious brands.
package seed

import (
	"context"
	"errors"
	"reflect"
	"time"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
	"bizops-dashboard/pkg/log"
)

// Result counts what a Run inserted.
type Result struct {
	Inserted int
	Failed   int
	Skipped  []string
}

type seeder struct {
	store  *repository.Store
	brand  string
	now    time.Time
	result *Result
}

// Run inserts the fixtures of every demo brand. A brand whose Brand row
// already exists is skipped. Individual insert failures are logged and do
// not stop the run; only a failure to check for existing brands is returned.
func Run(ctx context.Context, store *repository.Store) (Result, error) {
	return run(ctx, store, time.Now().UTC())
}

func run(ctx context.Context, store *repository.Store, now time.Time) (Result, error) {
	var res Result
	for _, f := range fixtures(now) {
		code := f.brand.Code
		existing, err := store.Brands.List(ctx, repository.Filter{Where: map[string]any{"code": code}})
		if err != nil {
			return res, err
		}
		if len(existing) > 0 {
			log.Infof("[Seed] brand %s already present, skipping", code)
			res.Skipped = append(res.Skipped, code)
			continue
		}

		s := &seeder{store: store, brand: code, now: now, result: &res}
		before := res.Inserted
		s.seedBrand(ctx, f)
		log.Infof("[Seed] brand %s: %d rows inserted", code, res.Inserted-before)
	}
	log.Infof("[Seed] done, inserted=%d failed=%d skipped=%v", res.Inserted, res.Failed, res.Skipped)
	return res, nil
}

func (s *seeder) seedBrand(ctx context.Context, f fixture) {
	if !insert(ctx, s, s.store.Brands, &f.brand) {
		return
	}
	s.organization(ctx, f)
	s.vendors(ctx, f)
	s.itil(ctx, f)
	s.retail(ctx, f)
	s.manufacturing(ctx, f)
	s.facilities(ctx, f)
	s.licensing(ctx, f)
	s.security(ctx, f)
	s.documentation(ctx, f)
}

// insert creates row, stamping it with the seeder's brand when its Brand
// field is empty. It reports whether the row was stored.
func insert[T any](ctx context.Context, s *seeder, repo repository.CRUDRepository[T], row *T) bool {
	if v := reflect.ValueOf(row).Elem().FieldByName("Brand"); v.IsValid() && v.Kind() == reflect.String && v.String() == "" {
		v.SetString(s.brand)
	}
	if err := repo.Create(ctx, row); err != nil {
		s.result.Failed++
		if errors.Is(err, repository.ErrDuplicate) {
			log.Warnf("[Seed] %s: duplicate %T skipped", s.brand, row)
		} else {
			log.Errorf("[Seed] %s: failed to insert %T: %v", s.brand, row, err)
		}
		return false
	}
	s.result.Inserted++
	return true
}

func (s *seeder) days(n int) *time.Time {
	return model.TimePtr(s.now.AddDate(0, 0, n))
}

func (s *seeder) organization(ctx context.Context, f fixture) {
	corp := f.corporate
	if !insert(ctx, s, s.store.Corporates, &corp) {
		return
	}
	for _, d := range f.divisions {
		div := d.division
		div.CorporateID = corp.ID
		if !insert(ctx, s, s.store.Divisions, &div) {
			continue
		}
		for _, dp := range d.departments {
			dept := dp.department
			dept.DivisionID = div.ID
			if !insert(ctx, s, s.store.Departments, &dept) {
				continue
			}
			for _, fn := range dp.functions {
				bf := fn.function
				bf.DepartmentID = dept.ID
				if !insert(ctx, s, s.store.BusinessFunctions, &bf) {
					continue
				}
				for _, p := range fn.personas {
					persona := p
					persona.FunctionID = bf.ID
					insert(ctx, s, s.store.Personas, &persona)
				}
			}
		}
	}
	for _, u := range f.users {
		user := u
		insert(ctx, s, s.store.Users, &user)
	}
}

func (s *seeder) vendors(ctx context.Context, f fixture) {
	for _, vf := range f.vendors {
		v := vf.vendor
		v.ContractStart = s.days(-300)
		v.ContractEnd = s.days(400)
		if !insert(ctx, s, s.store.Vendors, &v) {
			continue
		}
		for _, m := range vf.members {
			member := m
			member.VendorID = v.ID
			insert(ctx, s, s.store.VendorTeamMembers, &member)
		}
		for _, a := range vf.agreements {
			agreement := a
			agreement.VendorID = v.ID
			agreement.StartDate = v.ContractStart
			agreement.EndDate = v.ContractEnd
			insert(ctx, s, s.store.VendorAgreements, &agreement)
		}
		for _, l := range vf.licenses {
			license := l.license
			license.VendorID = &v.ID
			license.PurchaseDate = s.days(-330)
			license.ExpiryDate = s.days(l.expiresInDays)
			insert(ctx, s, s.store.Licenses, &license)
		}
		for _, i := range vf.incidents {
			incident := i
			incident.VendorID = &v.ID
			incident.ReportedAt = s.days(-3)
			if incident.Status == model.IncidentResolved || incident.Status == model.IncidentClosed {
				incident.ResolvedAt = s.days(-1)
			}
			insert(ctx, s, s.store.Incidents, &incident)
		}
	}
	for _, c := range f.cloud {
		svc := c
		insert(ctx, s, s.store.CloudServices, &svc)
	}
}

func (s *seeder) itil(ctx context.Context, f fixture) {
	category := f.serviceCategory
	if !insert(ctx, s, s.store.ServiceCategories, &category) {
		return
	}
	services := make([]uint, 0, len(f.services))
	for _, sf := range f.services {
		svc := sf.service
		svc.CategoryID = &category.ID
		if !insert(ctx, s, s.store.ItilServices, &svc) {
			continue
		}
		services = append(services, svc.ID)
		var items []uint
		for _, c := range sf.items {
			ci := c
			ci.ServiceID = &svc.ID
			if insert(ctx, s, s.store.ConfigurationItems, &ci) {
				items = append(items, ci.ID)
			}
		}
		for i := 1; i < len(items); i++ {
			insert(ctx, s, s.store.CiRelationships, &model.CiRelationship{
				ParentCiID: items[0], ChildCiID: items[i], RelationshipType: "hosts",
			})
		}
	}
	for i := 1; i < len(services); i++ {
		insert(ctx, s, s.store.ServiceRelationships, &model.ServiceRelationship{
			ParentServiceID: services[0], ChildServiceID: services[i], RelationshipType: "depends_on",
		})
	}
}

func (s *seeder) retail(ctx context.Context, f fixture) {
	var storeIDs []uint
	for _, sf := range f.stores {
		st := sf.store
		st.OpeningDate = s.days(-900)
		if !insert(ctx, s, s.store.Stores, &st) {
			continue
		}
		storeIDs = append(storeIDs, st.ID)
		for _, i := range sf.inventory {
			item := i
			item.StoreID = st.ID
			item.LastRestocked = s.days(-2)
			insert(ctx, s, s.store.StoreInventory, &item)
		}
		for d, total := range sf.dailySales {
			day := s.now.AddDate(0, 0, -d-1)
			insert(ctx, s, s.store.StoreSales, &model.StoreSales{
				StoreID:          st.ID,
				SaleDate:         model.TimePtr(day),
				Month:            int(day.Month()),
				Year:             day.Year(),
				TotalSales:       total,
				TransactionCount: int(total / 25),
				AverageTicket:    25,
			})
		}
		for _, m := range sf.staff {
			staff := m
			staff.StoreID = st.ID
			staff.HireDate = s.days(-400)
			if !insert(ctx, s, s.store.StoreStaff, &staff) {
				continue
			}
			insert(ctx, s, s.store.StoreSchedules, &model.StoreSchedule{
				StoreID: st.ID, StaffID: &staff.ID, ShiftDate: s.days(1),
				StartTime: "09:00", EndTime: "17:00", Role: staff.Position,
			})
			if staff.IsKeyholder {
				insert(ctx, s, s.store.KeyholderAssignments, &model.KeyholderAssignment{
					StoreID: st.ID, StaffID: staff.ID, AssignedDate: s.days(-30), Status: "active", KeyCount: 2,
				})
			}
		}
		for _, d := range sf.displays {
			display := d
			display.StoreID = st.ID
			display.InstallDate = s.days(-14)
			insert(ctx, s, s.store.StoreDisplays, &display)
		}
	}
	for _, m := range f.messages {
		msg := m
		msg.ExpiresAt = s.days(14)
		if !insert(ctx, s, s.store.CorporateMessages, &msg) || len(storeIDs) == 0 {
			continue
		}
		insert(ctx, s, s.store.MessageAcknowledgments, &model.MessageAcknowledgment{
			MessageID: msg.ID, StoreID: storeIDs[0], AcknowledgedBy: "Store Manager", AcknowledgedAt: s.days(-1),
		})
	}
}

func (s *seeder) manufacturing(ctx context.Context, f fixture) {
	var productIDs []uint
	for _, p := range f.products {
		product := p
		if insert(ctx, s, s.store.Products, &product) {
			productIDs = append(productIDs, product.ID)
		}
	}
	for i, m := range f.manufacturers {
		mfr := m
		if !insert(ctx, s, s.store.Manufacturers, &mfr) {
			continue
		}
		metrics := f.manufacturingMetrics
		metrics.ManufacturerID = &mfr.ID
		insert(ctx, s, s.store.ManufacturingMetrics, &metrics)
		if len(productIDs) == 0 {
			continue
		}
		order := model.ProductionOrder{
			ManufacturerID:   mfr.ID,
			ProductID:        productIDs[i%len(productIDs)],
			OrderNumber:      orderNumber(s.brand, i),
			Quantity:         500 * (i + 1),
			Status:           "in_production",
			OrderDate:        s.days(-20),
			ExpectedDelivery: s.days(25),
			TotalCost:        float64(500*(i+1)) * 4.5,
		}
		if !insert(ctx, s, s.store.ProductionOrders, &order) {
			continue
		}
		insert(ctx, s, s.store.Shipments, &model.Shipment{
			ProductionOrderID: &order.ID,
			TrackingNumber:    "TRK-" + order.OrderNumber,
			Carrier:           "Maersk",
			Origin:            mfr.Country,
			Destination:       "Central DC",
			Status:            "in_transit",
			ShippedDate:       s.days(-5),
			EstimatedArrival:  s.days(9),
		})
	}
	chain := f.supplyChain
	insert(ctx, s, s.store.SupplyChainKpis, &chain)
}

func (s *seeder) facilities(ctx context.Context, f fixture) {
	for _, ff := range f.facilities {
		facility := ff.facility
		if !insert(ctx, s, s.store.Facilities, &facility) {
			continue
		}
		for _, r := range ff.requests {
			req := r
			req.FacilityID = facility.ID
			req.ScheduledDate = s.days(3)
			insert(ctx, s, s.store.MaintenanceRequests, &req)
		}
	}
}

func (s *seeder) licensing(ctx context.Context, f fixture) {
	var firstUser uint
	if users, err := s.store.Users.List(ctx, repository.ByBrand(s.brand)); err == nil && len(users) > 0 {
		firstUser = users[0].ID
	}
	for _, pf := range f.packs {
		pack := pf.pack
		pack.PurchaseDate = s.days(-200)
		pack.RenewalDate = s.days(pf.renewsInDays)
		if !insert(ctx, s, s.store.CorporateLicensePacks, &pack) {
			continue
		}
		for n := 0; n < pf.entitlements; n++ {
			ent := model.EntitlementLicense{
				PackID:      pack.ID,
				ProductName: pack.ProductName,
				LicenseKey:  licenseKey(s.brand, pack.ID, n),
				Status:      "assigned",
				ExpiresAt:   pack.RenewalDate,
			}
			if !insert(ctx, s, s.store.EntitlementLicenses, &ent) || firstUser == 0 || n > 0 {
				continue
			}
			insert(ctx, s, s.store.UserLicenseAssignments, &model.UserLicenseAssignment{
				UserID: firstUser, LicenseType: model.LicenseKindEntitlement, LicenseID: ent.ID,
				AssignedDate: s.days(-60), AssignedBy: "IT Asset Management", Status: "active",
			})
		}
		for _, sl := range pf.specialized {
			spec := sl
			spec.PackID = &pack.ID
			spec.ExpiresAt = pack.RenewalDate
			insert(ctx, s, s.store.SpecializedLicenses, &spec)
		}
	}
}

func (s *seeder) security(ctx context.Context, f fixture) {
	for _, p := range f.policies {
		policy := p
		insert(ctx, s, s.store.ZeroTrustPolicies, &policy)
	}
	for _, k := range f.zeroTrust {
		kpi := k
		insert(ctx, s, s.store.ZeroTrustKpis, &kpi)
	}
	for _, a := range f.conditionalAccess {
		analytics := a
		insert(ctx, s, s.store.ConditionalAccessAnalytics, &analytics)
	}
	for _, m := range f.mfaFatigue {
		metrics := m
		insert(ctx, s, s.store.MfaFatigueMetrics, &metrics)
	}
	for _, i := range f.securityIncidents {
		incident := i
		incident.DetectedAt = s.days(-2)
		insert(ctx, s, s.store.SecurityIncidents, &incident)
	}
}

func (s *seeder) documentation(ctx context.Context, f fixture) {
	root := model.DocumentCategory{Name: "Knowledge Base", Description: "Top level category"}
	if !insert(ctx, s, s.store.DocumentCategories, &root) {
		return
	}
	for _, cf := range f.categories {
		cat := cf.category
		cat.ParentID = &root.ID
		if !insert(ctx, s, s.store.DocumentCategories, &cat) {
			continue
		}
		for _, d := range cf.documents {
			doc := d
			doc.CategoryID = &cat.ID
			doc.Status = model.DocumentPublished
			doc.Version = 1
			if !insert(ctx, s, s.store.Documents, &doc) {
				continue
			}
			insert(ctx, s, s.store.DocumentAnalytics, &model.DocumentAnalytics{
				DocumentID: doc.ID, Date: s.days(-1), Views: 42, UniqueViewers: 17, AvgTimeSpent: 96.5, SearchAppearances: 12,
			})
			insert(ctx, s, s.store.DocumentFeedback, &model.DocumentFeedback{
				DocumentID: doc.ID, Rating: 4, Comment: "Clear and useful", SubmittedBy: "reviewer", Helpful: true,
			})
		}
	}
}
