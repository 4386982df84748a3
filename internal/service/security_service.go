package service

import (
	"context"

	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
)

// HighRiskScore is the MFA fatigue risk score from which a user is flagged.
const HighRiskScore = 70

// ZeroTrustScores are averages over every ZeroTrustKpis snapshot in scope.
type ZeroTrustScores struct {
	Identity    float64 `json:"identity"`
	Device      float64 `json:"device"`
	Network     float64 `json:"network"`
	Application float64 `json:"application"`
	Data        float64 `json:"data"`
	Overall     float64 `json:"overall"`
}

// ZeroTrustSummary backs the Zero Trust overview page.
type ZeroTrustSummary struct {
	Scores               ZeroTrustScores           `json:"scores"`
	Snapshots            int                       `json:"snapshots"`
	TotalPolicies        int                       `json:"totalPolicies"`
	ActivePolicies       int                       `json:"activePolicies"`
	EnforcedPolicies     int                       `json:"enforcedPolicies"`
	OpenIncidents        int                       `json:"openIncidents"`
	OpenIncidentsBySev   map[string]int            `json:"openIncidentsBySeverity"`
	HighRiskUsers        []model.MfaFatigueMetrics `json:"highRiskUsers"`
	AverageAccessSuccess float64                   `json:"averageAccessSuccessRate"`
	TotalBlockedAccesses int                       `json:"totalBlockedAccesses"`
}

type SecurityService interface {
	ZeroTrustSummary(ctx context.Context, brand string) (*ZeroTrustSummary, error)
}

type securityService struct {
	store *repository.Store
}

func NewSecurityService(store *repository.Store) SecurityService {
	return &securityService{store: store}
}

func (s *securityService) ZeroTrustSummary(ctx context.Context, brand string) (*ZeroTrustSummary, error) {
	f := repository.ByBrand(brand)
	kpis, err := s.store.ZeroTrustKpis.List(ctx, f)
	if err != nil {
		return nil, err
	}
	policies, err := s.store.ZeroTrustPolicies.List(ctx, f)
	if err != nil {
		return nil, err
	}
	incidents, err := s.store.SecurityIncidents.List(ctx, f)
	if err != nil {
		return nil, err
	}
	mfa, err := s.store.MfaFatigueMetrics.List(ctx, f)
	if err != nil {
		return nil, err
	}
	access, err := s.store.ConditionalAccessAnalytics.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &ZeroTrustSummary{
		Snapshots:          len(kpis),
		TotalPolicies:      len(policies),
		OpenIncidentsBySev: map[string]int{},
		HighRiskUsers:      make([]model.MfaFatigueMetrics, 0),
	}

	var sum ZeroTrustScores
	for _, k := range kpis {
		sum.Identity += k.IdentityScore
		sum.Device += k.DeviceScore
		sum.Network += k.NetworkScore
		sum.Application += k.ApplicationScore
		sum.Data += k.DataScore
		sum.Overall += k.OverallScore
	}
	n := len(kpis)
	out.Scores = ZeroTrustScores{
		Identity:    average(sum.Identity, n),
		Device:      average(sum.Device, n),
		Network:     average(sum.Network, n),
		Application: average(sum.Application, n),
		Data:        average(sum.Data, n),
		Overall:     average(sum.Overall, n),
	}

	for _, p := range policies {
		if p.Status == "active" {
			out.ActivePolicies++
			if p.EnforcementMode == "enforce" {
				out.EnforcedPolicies++
			}
		}
	}
	for _, i := range incidents {
		if isOpenSecurityIncident(i.Status) {
			out.OpenIncidents++
			out.OpenIncidentsBySev[i.Severity]++
		}
	}
	for _, m := range mfa {
		if m.RiskScore >= HighRiskScore {
			out.HighRiskUsers = append(out.HighRiskUsers, m)
		}
	}
	var success float64
	for _, a := range access {
		success += a.SuccessRate
		out.TotalBlockedAccesses += a.BlockedCount
	}
	out.AverageAccessSuccess = average(success, len(access))
	return out, nil
}
