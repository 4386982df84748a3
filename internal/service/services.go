package service

import (
	"bizops-dashboard/internal/events"
	"bizops-dashboard/internal/model"
	"bizops-dashboard/internal/repository"
)

// CRUD holds one CRUDService per entity, named after its route.
type CRUD struct {
	Brands            *CRUDService[model.Brand]
	Corporates        *CRUDService[model.Corporate]
	Divisions         *CRUDService[model.Division]
	Departments       *CRUDService[model.Department]
	BusinessFunctions *CRUDService[model.BusinessFunction]
	Personas          *CRUDService[model.Persona]
	Users             *CRUDService[model.User]

	Vendors           *CRUDService[model.Vendor]
	VendorTeamMembers *CRUDService[model.VendorTeamMember]
	VendorAgreements  *CRUDService[model.VendorAgreement]
	Licenses          *CRUDService[model.License]
	Incidents         *CRUDService[model.Incident]
	CloudServices     *CRUDService[model.CloudService]

	ServiceCategories    *CRUDService[model.ServiceCategory]
	ItilServices         *CRUDService[model.ItilService]
	ConfigurationItems   *CRUDService[model.ConfigurationItem]
	ServiceRelationships *CRUDService[model.ServiceRelationship]
	CiRelationships      *CRUDService[model.CiRelationship]

	Stores                 *CRUDService[model.Store]
	StoreInventory         *CRUDService[model.StoreInventory]
	StoreSales             *CRUDService[model.StoreSales]
	StoreStaff             *CRUDService[model.StoreStaff]
	StoreDisplays          *CRUDService[model.StoreDisplay]
	StoreSchedules         *CRUDService[model.StoreSchedule]
	KeyholderAssignments   *CRUDService[model.KeyholderAssignment]
	CorporateMessages      *CRUDService[model.CorporateMessage]
	MessageAcknowledgments *CRUDService[model.MessageAcknowledgment]

	Manufacturers        *CRUDService[model.Manufacturer]
	Products             *CRUDService[model.Product]
	ProductionOrders     *CRUDService[model.ProductionOrder]
	Shipments            *CRUDService[model.Shipment]
	ManufacturingMetrics *CRUDService[model.ManufacturingMetrics]
	SupplyChainKpis      *CRUDService[model.SupplyChainKpis]

	Facilities          *CRUDService[model.Facility]
	MaintenanceRequests *CRUDService[model.MaintenanceRequest]

	CorporateLicensePacks  *CRUDService[model.CorporateLicensePack]
	EntitlementLicenses    *CRUDService[model.EntitlementLicense]
	SpecializedLicenses    *CRUDService[model.SpecializedLicense]
	UserLicenseAssignments *CRUDService[model.UserLicenseAssignment]

	ZeroTrustPolicies          *CRUDService[model.ZeroTrustPolicy]
	ConditionalAccessAnalytics *CRUDService[model.ConditionalAccessAnalytics]
	MfaFatigueMetrics          *CRUDService[model.MfaFatigueMetrics]
	ZeroTrustKpis              *CRUDService[model.ZeroTrustKpis]
	SecurityIncidents          *CRUDService[model.SecurityIncident]

	DocumentCategories     *CRUDService[model.DocumentCategory]
	Documents              *CRUDService[model.Document]
	DocumentRevisions      *CRUDService[model.DocumentRevision]
	DocumentFeedback       *CRUDService[model.DocumentFeedback]
	AiDocumentImprovements *CRUDService[model.AiDocumentImprovement]
	DocumentAnalytics      *CRUDService[model.DocumentAnalytics]
}

// NewCRUD builds every entity service over store, publishing to pub.
func NewCRUD(store *repository.Store, pub events.Publisher) *CRUD {
	return &CRUD{
		Brands:            NewCRUDService(store.Brands, "brands", pub),
		Corporates:        NewCRUDService(store.Corporates, "corporates", pub),
		Divisions:         NewCRUDService(store.Divisions, "divisions", pub),
		Departments:       NewCRUDService(store.Departments, "departments", pub),
		BusinessFunctions: NewCRUDService(store.BusinessFunctions, "business-functions", pub),
		Personas:          NewCRUDService(store.Personas, "personas", pub),
		Users:             NewCRUDService(store.Users, "users", pub),

		Vendors:           NewCRUDService(store.Vendors, "vendors", pub),
		VendorTeamMembers: NewCRUDService(store.VendorTeamMembers, "vendor-team-members", pub),
		VendorAgreements:  NewCRUDService(store.VendorAgreements, "vendor-agreements", pub),
		Licenses:          NewCRUDService(store.Licenses, "licenses", pub),
		Incidents:         NewCRUDService(store.Incidents, "incidents", pub),
		CloudServices:     NewCRUDService(store.CloudServices, "cloud-services", pub),

		ServiceCategories:    NewCRUDService(store.ServiceCategories, "service-categories", pub),
		ItilServices:         NewCRUDService(store.ItilServices, "itil-services", pub),
		ConfigurationItems:   NewCRUDService(store.ConfigurationItems, "configuration-items", pub),
		ServiceRelationships: NewCRUDService(store.ServiceRelationships, "service-relationships", pub),
		CiRelationships:      NewCRUDService(store.CiRelationships, "ci-relationships", pub),

		Stores:                 NewCRUDService(store.Stores, "stores", pub),
		StoreInventory:         NewCRUDService(store.StoreInventory, "store-inventory", pub),
		StoreSales:             NewCRUDService(store.StoreSales, "store-sales", pub),
		StoreStaff:             NewCRUDService(store.StoreStaff, "store-staff", pub),
		StoreDisplays:          NewCRUDService(store.StoreDisplays, "store-displays", pub),
		StoreSchedules:         NewCRUDService(store.StoreSchedules, "store-schedules", pub),
		KeyholderAssignments:   NewCRUDService(store.KeyholderAssignments, "keyholder-assignments", pub),
		CorporateMessages:      NewCRUDService(store.CorporateMessages, "corporate-messages", pub),
		MessageAcknowledgments: NewCRUDService(store.MessageAcknowledgments, "message-acknowledgments", pub),

		Manufacturers:        NewCRUDService(store.Manufacturers, "manufacturers", pub),
		Products:             NewCRUDService(store.Products, "products", pub),
		ProductionOrders:     NewCRUDService(store.ProductionOrders, "production-orders", pub),
		Shipments:            NewCRUDService(store.Shipments, "shipments", pub),
		ManufacturingMetrics: NewCRUDService(store.ManufacturingMetrics, "manufacturing-metrics", pub),
		SupplyChainKpis:      NewCRUDService(store.SupplyChainKpis, "supply-chain-kpis", pub),

		Facilities:          NewCRUDService(store.Facilities, "facilities", pub),
		MaintenanceRequests: NewCRUDService(store.MaintenanceRequests, "maintenance-requests", pub),

		CorporateLicensePacks:  NewCRUDService(store.CorporateLicensePacks, "corporate-license-packs", pub),
		EntitlementLicenses:    NewCRUDService(store.EntitlementLicenses, "entitlement-licenses", pub),
		SpecializedLicenses:    NewCRUDService(store.SpecializedLicenses, "specialized-licenses", pub),
		UserLicenseAssignments: NewCRUDService(store.UserLicenseAssignments, "user-license-assignments", pub),

		ZeroTrustPolicies:          NewCRUDService(store.ZeroTrustPolicies, "zero-trust-policies", pub),
		ConditionalAccessAnalytics: NewCRUDService(store.ConditionalAccessAnalytics, "conditional-access-analytics", pub),
		MfaFatigueMetrics:          NewCRUDService(store.MfaFatigueMetrics, "mfa-fatigue-metrics", pub),
		ZeroTrustKpis:              NewCRUDService(store.ZeroTrustKpis, "zero-trust-kpis", pub),
		SecurityIncidents:          NewCRUDService(store.SecurityIncidents, "security-incidents", pub),

		DocumentCategories:     NewCRUDService(store.DocumentCategories, "document-categories", pub),
		Documents:              NewCRUDService(store.Documents, "documents", pub),
		DocumentRevisions:      NewCRUDService(store.DocumentRevisions, "document-revisions", pub),
		DocumentFeedback:       NewCRUDService(store.DocumentFeedback, "document-feedback", pub),
		AiDocumentImprovements: NewCRUDService(store.AiDocumentImprovements, "ai-document-improvements", pub),
		DocumentAnalytics:      NewCRUDService(store.DocumentAnalytics, "document-analytics", pub),
	}
}
