package model

// All returns one zero value of every persisted model, in migration order.
func All() []any {
	return []any{
		&Brand{}, &Corporate{}, &Division{}, &Department{}, &BusinessFunction{}, &Persona{}, &User{},
		&Vendor{}, &VendorTeamMember{}, &VendorAgreement{}, &License{}, &Incident{}, &CloudService{},
		&ServiceCategory{}, &ItilService{}, &ConfigurationItem{}, &ServiceRelationship{}, &CiRelationship{},
		&Store{}, &StoreInventory{}, &StoreSales{}, &StoreStaff{}, &StoreDisplay{}, &StoreSchedule{},
		&KeyholderAssignment{}, &CorporateMessage{}, &MessageAcknowledgment{},
		&Manufacturer{}, &Product{}, &ProductionOrder{}, &Shipment{}, &ManufacturingMetrics{}, &SupplyChainKpis{},
		&Facility{}, &MaintenanceRequest{},
		&CorporateLicensePack{}, &EntitlementLicense{}, &SpecializedLicense{}, &UserLicenseAssignment{},
		&ZeroTrustPolicy{}, &ConditionalAccessAnalytics{}, &MfaFatigueMetrics{}, &ZeroTrustKpis{}, &SecurityIncident{},
		&DocumentCategory{}, &Document{}, &DocumentRevision{}, &DocumentFeedback{}, &AiDocumentImprovement{}, &DocumentAnalytics{},
	}
}
