package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
)

// RenewalWindow is how far ahead a pack renewal is reported as upcoming.
const RenewalWindow = 60 * 24 * time.Hour

// ResolvedLicense is the row a LicenseRef points at. Exactly one of the
// pointers is set, matching Kind.
type ResolvedLicense struct {
	Kind        model.LicenseKind           `json:"kind"`
	Entitlement *model.EntitlementLicense   `json:"entitlement,omitempty"`
	Specialized *model.SpecializedLicense   `json:"specialized,omitempty"`
	Pack        *model.CorporateLicensePack `json:"pack,omitempty"`
}

// LicenseResolver looks up the target of a UserLicenseAssignment.
type LicenseResolver struct {
	store *repository.Store
}

func NewLicenseResolver(store *repository.Store) *LicenseResolver {
	return &LicenseResolver{store: store}
}

// Resolve returns ErrInvalidLicenseRef for an unknown kind or a missing row.
func (r *LicenseResolver) Resolve(ctx context.Context, ref model.LicenseRef) (*ResolvedLicense, error) {
	out := &ResolvedLicense{Kind: ref.Kind}
	var err error
	switch ref.Kind {
	case model.LicenseKindEntitlement:
		out.Entitlement, err = r.store.EntitlementLicenses.Get(ctx, ref.ID)
	case model.LicenseKindSpecialized:
		out.Specialized, err = r.store.SpecializedLicenses.Get(ctx, ref.ID)
	case model.LicenseKindPack:
		out.Pack, err = r.store.CorporateLicensePacks.Get(ctx, ref.ID)
	default:
		return nil, fmt.Errorf("%w: unknown license type %q", ErrInvalidLicenseRef, ref.Kind)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLicenseRef, ref)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForAssignment resolves the license of assignment id. A license deleted
// after the assignment was made reads as repository.ErrNotFound.
func (r *LicenseResolver) ForAssignment(ctx context.Context, id uint) (*ResolvedLicense, error) {
	a, err := r.store.UserLicenseAssignments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved, err := r.Resolve(ctx, a.Ref())
	if errors.Is(err, ErrInvalidLicenseRef) {
		return nil, fmt.Errorf("%w: license %s", repository.ErrNotFound, a.Ref())
	}
	return resolved, err
}

// Guard makes svc reject assignments whose reference does not resolve.
// Updates that keep the stored reference are not re-checked, so an assignment
// whose license was deleted can still be revoked or annotated.
func (r *LicenseResolver) Guard(svc *CRUDService[model.UserLicenseAssignment]) {
	svc.BeforeWrite(func(ctx context.Context, current, a *model.UserLicenseAssignment) error {
		if current != nil && current.Ref() == a.Ref() {
			return nil
		}
		_, err := r.Resolve(ctx, a.Ref())
		return err
	})
}

// PackUtilization is one row of the licensing analytics table.
type PackUtilization struct {
	ID               uint       `json:"id"`
	VendorName       string     `json:"vendorName"`
	ProductName      string     `json:"productName"`
	TotalLicenses    int        `json:"totalLicenses"`
	AssignedLicenses int        `json:"assignedLicenses"`
	UtilizationRate  float64    `json:"utilizationRate"`
	TotalCost        float64    `json:"totalCost"`
	RenewalDate      *time.Time `json:"renewalDate"`
	Status           string     `json:"status"`
}

// LicensingAnalytics backs the licensing analytics page.
type LicensingAnalytics struct {
	Packs               []PackUtilization `json:"packs"`
	TotalPacks          int               `json:"totalPacks"`
	TotalLicenses       int               `json:"totalLicenses"`
	AssignedLicenses    int               `json:"assignedLicenses"`
	AvailableLicenses   int               `json:"availableLicenses"`
	UtilizationRate     float64           `json:"utilizationRate"`
	TotalCost           float64           `json:"totalCost"`
	EntitlementLicenses int               `json:"entitlementLicenses"`
	SpecializedLicenses int               `json:"specializedLicenses"`
	SpecializedCost     float64           `json:"specializedCost"`
	Assignments         int               `json:"assignments"`
	UpcomingRenewals    []PackUtilization `json:"upcomingRenewals"`
}

type LicensingService interface {
	Analytics(ctx context.Context, brand string) (*LicensingAnalytics, error)
}

type licensingService struct {
	store *repository.Store
	now   func() time.Time
}

func NewLicensingService(store *repository.Store) LicensingService {
	return &licensingService{store: store, now: time.Now}
}

func (s *licensingService) Analytics(ctx context.Context, brand string) (*LicensingAnalytics, error) {
	f := repository.ByBrand(brand)
	packs, err := s.store.CorporateLicensePacks.List(ctx, f)
	if err != nil {
		return nil, err
	}
	entitlements, err := s.store.EntitlementLicenses.List(ctx, f)
	if err != nil {
		return nil, err
	}
	specialized, err := s.store.SpecializedLicenses.List(ctx, f)
	if err != nil {
		return nil, err
	}
	assignments, err := s.store.UserLicenseAssignments.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &LicensingAnalytics{
		Packs:               make([]PackUtilization, 0, len(packs)),
		UpcomingRenewals:    make([]PackUtilization, 0),
		TotalPacks:          len(packs),
		EntitlementLicenses: len(entitlements),
		SpecializedLicenses: len(specialized),
		Assignments:         len(assignments),
	}
	now := s.now()
	horizon := now.Add(RenewalWindow)
	for _, p := range packs {
		row := PackUtilization{
			ID:               p.ID,
			VendorName:       p.VendorName,
			ProductName:      p.ProductName,
			TotalLicenses:    p.TotalLicenses,
			AssignedLicenses: p.AssignedLicenses,
			UtilizationRate:  percent(p.AssignedLicenses, p.TotalLicenses),
			TotalCost:        p.TotalCost,
			RenewalDate:      p.RenewalDate,
			Status:           p.Status,
		}
		out.Packs = append(out.Packs, row)
		out.TotalLicenses += p.TotalLicenses
		out.AssignedLicenses += p.AssignedLicenses
		out.TotalCost += p.TotalCost
		if p.RenewalDate != nil && !p.RenewalDate.Before(now) && !p.RenewalDate.After(horizon) {
			out.UpcomingRenewals = append(out.UpcomingRenewals, row)
		}
	}
	out.TotalCost = round2(out.TotalCost)
	out.AvailableLicenses = out.TotalLicenses - out.AssignedLicenses
	out.UtilizationRate = percent(out.AssignedLicenses, out.TotalLicenses)
	for _, l := range specialized {
		out.SpecializedCost += l.Cost
	}
	out.SpecializedCost = round2(out.SpecializedCost)
	return out, nil
}
