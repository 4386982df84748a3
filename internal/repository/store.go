package repository

import (
	"context"

	"bizops-dashboard/internal/model"

	"gorm.io/gorm"
)

// Store groups one repository per table over a shared connection.
type Store struct {
	db *gorm.DB

	Brands            CRUDRepository[model.Brand]
	Corporates        CRUDRepository[model.Corporate]
	Divisions         CRUDRepository[model.Division]
	Departments       CRUDRepository[model.Department]
	BusinessFunctions CRUDRepository[model.BusinessFunction]
	Personas          CRUDRepository[model.Persona]
	Users             CRUDRepository[model.User]

	Vendors           CRUDRepository[model.Vendor]
	VendorTeamMembers CRUDRepository[model.VendorTeamMember]
	VendorAgreements  CRUDRepository[model.VendorAgreement]
	Licenses          CRUDRepository[model.License]
	Incidents         CRUDRepository[model.Incident]
	CloudServices     CRUDRepository[model.CloudService]

	ServiceCategories    CRUDRepository[model.ServiceCategory]
	ItilServices         CRUDRepository[model.ItilService]
	ConfigurationItems   CRUDRepository[model.ConfigurationItem]
	ServiceRelationships CRUDRepository[model.ServiceRelationship]
	CiRelationships      CRUDRepository[model.CiRelationship]

	Stores                 CRUDRepository[model.Store]
	StoreInventory         CRUDRepository[model.StoreInventory]
	StoreSales             CRUDRepository[model.StoreSales]
	StoreStaff             CRUDRepository[model.StoreStaff]
	StoreDisplays          CRUDRepository[model.StoreDisplay]
	StoreSchedules         CRUDRepository[model.StoreSchedule]
	KeyholderAssignments   CRUDRepository[model.KeyholderAssignment]
	CorporateMessages      CRUDRepository[model.CorporateMessage]
	MessageAcknowledgments CRUDRepository[model.MessageAcknowledgment]

	Manufacturers        CRUDRepository[model.Manufacturer]
	Products             CRUDRepository[model.Product]
	ProductionOrders     CRUDRepository[model.ProductionOrder]
	Shipments            CRUDRepository[model.Shipment]
	ManufacturingMetrics CRUDRepository[model.ManufacturingMetrics]
	SupplyChainKpis      CRUDRepository[model.SupplyChainKpis]

	Facilities          CRUDRepository[model.Facility]
	MaintenanceRequests CRUDRepository[model.MaintenanceRequest]

	CorporateLicensePacks  CRUDRepository[model.CorporateLicensePack]
	EntitlementLicenses    CRUDRepository[model.EntitlementLicense]
	SpecializedLicenses    CRUDRepository[model.SpecializedLicense]
	UserLicenseAssignments CRUDRepository[model.UserLicenseAssignment]

	ZeroTrustPolicies          CRUDRepository[model.ZeroTrustPolicy]
	ConditionalAccessAnalytics CRUDRepository[model.ConditionalAccessAnalytics]
	MfaFatigueMetrics          CRUDRepository[model.MfaFatigueMetrics]
	ZeroTrustKpis              CRUDRepository[model.ZeroTrustKpis]
	SecurityIncidents          CRUDRepository[model.SecurityIncident]

	DocumentCategories     CRUDRepository[model.DocumentCategory]
	Documents              CRUDRepository[model.Document]
	DocumentRevisions      CRUDRepository[model.DocumentRevision]
	DocumentFeedback       CRUDRepository[model.DocumentFeedback]
	AiDocumentImprovements CRUDRepository[model.AiDocumentImprovement]
	DocumentAnalytics      CRUDRepository[model.DocumentAnalytics]
}

// NewStore builds every repository on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db: db,

		// Brand rows are the brand registry itself, so they are never brand filtered.
		Brands:            NewUnscopedRepository[model.Brand](db),
		Corporates:        NewCRUDRepository[model.Corporate](db),
		Divisions:         NewCRUDRepository[model.Division](db),
		Departments:       NewCRUDRepository[model.Department](db),
		BusinessFunctions: NewCRUDRepository[model.BusinessFunction](db),
		Personas:          NewCRUDRepository[model.Persona](db),
		Users:             NewCRUDRepository[model.User](db),

		Vendors:           NewCRUDRepository[model.Vendor](db),
		VendorTeamMembers: NewCRUDRepository[model.VendorTeamMember](db),
		VendorAgreements:  NewCRUDRepository[model.VendorAgreement](db),
		Licenses:          NewCRUDRepository[model.License](db),
		Incidents:         NewCRUDRepository[model.Incident](db),
		CloudServices:     NewCRUDRepository[model.CloudService](db),

		ServiceCategories:    NewCRUDRepository[model.ServiceCategory](db),
		ItilServices:         NewCRUDRepository[model.ItilService](db),
		ConfigurationItems:   NewCRUDRepository[model.ConfigurationItem](db),
		ServiceRelationships: NewCRUDRepository[model.ServiceRelationship](db),
		CiRelationships:      NewCRUDRepository[model.CiRelationship](db),

		Stores:                 NewCRUDRepository[model.Store](db),
		StoreInventory:         NewCRUDRepository[model.StoreInventory](db),
		StoreSales:             NewCRUDRepository[model.StoreSales](db),
		StoreStaff:             NewCRUDRepository[model.StoreStaff](db),
		StoreDisplays:          NewCRUDRepository[model.StoreDisplay](db),
		StoreSchedules:         NewCRUDRepository[model.StoreSchedule](db),
		KeyholderAssignments:   NewCRUDRepository[model.KeyholderAssignment](db),
		CorporateMessages:      NewCRUDRepository[model.CorporateMessage](db),
		MessageAcknowledgments: NewCRUDRepository[model.MessageAcknowledgment](db),

		Manufacturers:        NewCRUDRepository[model.Manufacturer](db),
		Products:             NewCRUDRepository[model.Product](db),
		ProductionOrders:     NewCRUDRepository[model.ProductionOrder](db),
		Shipments:            NewCRUDRepository[model.Shipment](db),
		ManufacturingMetrics: NewCRUDRepository[model.ManufacturingMetrics](db),
		SupplyChainKpis:      NewCRUDRepository[model.SupplyChainKpis](db),

		Facilities:          NewCRUDRepository[model.Facility](db),
		MaintenanceRequests: NewCRUDRepository[model.MaintenanceRequest](db),

		CorporateLicensePacks:  NewCRUDRepository[model.CorporateLicensePack](db),
		EntitlementLicenses:    NewCRUDRepository[model.EntitlementLicense](db),
		SpecializedLicenses:    NewCRUDRepository[model.SpecializedLicense](db),
		UserLicenseAssignments: NewCRUDRepository[model.UserLicenseAssignment](db),

		ZeroTrustPolicies:          NewCRUDRepository[model.ZeroTrustPolicy](db),
		ConditionalAccessAnalytics: NewCRUDRepository[model.ConditionalAccessAnalytics](db),
		MfaFatigueMetrics:          NewCRUDRepository[model.MfaFatigueMetrics](db),
		ZeroTrustKpis:              NewCRUDRepository[model.ZeroTrustKpis](db),
		SecurityIncidents:          NewCRUDRepository[model.SecurityIncident](db),

		DocumentCategories:     NewCRUDRepository[model.DocumentCategory](db),
		Documents:              NewCRUDRepository[model.Document](db),
		DocumentRevisions:      NewCRUDRepository[model.DocumentRevision](db),
		DocumentFeedback:       NewCRUDRepository[model.DocumentFeedback](db),
		AiDocumentImprovements: NewCRUDRepository[model.AiDocumentImprovement](db),
		DocumentAnalytics:      NewCRUDRepository[model.DocumentAnalytics](db),
	}
}

// Ping checks that the database answers and that the schema is readable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	var ids []uint
	return s.db.WithContext(ctx).Model(&model.Brand{}).Limit(1).Pluck("id", &ids).Error
}

// Transaction runs fn against a Store bound to a single database transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// AutoMigrate creates or updates every table.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(model.All()...)
}
