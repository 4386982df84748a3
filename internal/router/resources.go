package router

import (
	"bizops-dashboard/internal/handler"
	"bizops-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	by       = handler.By
	byNumber = handler.ByNumber
)

// registerResources mounts the CRUD routes of every entity and the nested
// list aliases of parent/child pairs.
func registerResources(api *gin.RouterGroup, crud *service.CRUD, write []gin.HandlerFunc) {
	// Organization
	handler.NewResourceHandler(crud.Brands, "Brand").Register(api, write...)
	handler.NewResourceHandler(crud.Corporates, "Corporate").Register(api, write...)
	divisions := handler.NewResourceHandler(crud.Divisions, "Division", byNumber("corporateId", "corporate_id"))
	divisions.Register(api, write...)
	departments := handler.NewResourceHandler(crud.Departments, "Department", byNumber("divisionId", "division_id"))
	departments.Register(api, write...)
	functions := handler.NewResourceHandler(crud.BusinessFunctions, "Business function", byNumber("departmentId", "department_id"))
	functions.Register(api, write...)
	personas := handler.NewResourceHandler(crud.Personas, "Persona", byNumber("functionId", "function_id"))
	personas.Register(api, write...)
	handler.NewResourceHandler(crud.Users, "User", byNumber("personaId", "persona_id"), by("status", "status")).Register(api, write...)

	api.GET("/corporates/:id/divisions", divisions.ListChildren("corporate_id"))
	api.GET("/divisions/:id/departments", departments.ListChildren("division_id"))
	api.GET("/departments/:id/functions", functions.ListChildren("department_id"))
	api.GET("/business-functions/:id/personas", personas.ListChildren("function_id"))

	// Vendor management
	handler.NewResourceHandler(crud.Vendors, "Vendor", by("status", "status"), by("category", "category")).Register(api, write...)
	teamMembers := handler.NewResourceHandler(crud.VendorTeamMembers, "Vendor team member", byNumber("vendorId", "vendor_id"))
	teamMembers.Register(api, write...)
	agreements := handler.NewResourceHandler(crud.VendorAgreements, "Vendor agreement", byNumber("vendorId", "vendor_id"))
	agreements.Register(api, write...)
	licenses := handler.NewResourceHandler(crud.Licenses, "License", byNumber("vendorId", "vendor_id"), by("status", "status"))
	licenses.Register(api, write...)
	incidents := handler.NewResourceHandler(crud.Incidents, "Incident",
		byNumber("vendorId", "vendor_id"), by("status", "status"), by("severity", "severity"))
	incidents.Register(api, write...)
	handler.NewResourceHandler(crud.CloudServices, "Cloud service", by("provider", "provider"), by("status", "status")).Register(api, write...)

	api.GET("/vendors/:id/team-members", teamMembers.ListChildren("vendor_id"))
	api.GET("/vendors/:id/agreements", agreements.ListChildren("vendor_id"))
	api.GET("/vendors/:id/licenses", licenses.ListChildren("vendor_id"))
	api.GET("/vendors/:id/incidents", incidents.ListChildren("vendor_id"))

	// ITIL / CMDB
	handler.NewResourceHandler(crud.ServiceCategories, "Service category").Register(api, write...)
	itilServices := handler.NewResourceHandler(crud.ItilServices, "ITIL service", byNumber("categoryId", "category_id"), by("status", "status"))
	itilServices.Register(api, write...)
	cis := handler.NewResourceHandler(crud.ConfigurationItems, "Configuration item", byNumber("serviceId", "service_id"), by("ciType", "ci_type"))
	cis.Register(api, write...)
	handler.NewResourceHandler(crud.ServiceRelationships, "Service relationship",
		byNumber("parentServiceId", "parent_service_id"), byNumber("childServiceId", "child_service_id")).Register(api, write...)
	handler.NewResourceHandler(crud.CiRelationships, "CI relationship",
		byNumber("parentCiId", "parent_ci_id"), byNumber("childCiId", "child_ci_id")).Register(api, write...)

	api.GET("/service-categories/:id/services", itilServices.ListChildren("category_id"))
	api.GET("/itil-services/:id/configuration-items", cis.ListChildren("service_id"))

	// Retail
	handler.NewResourceHandler(crud.Stores, "Store", by("status", "status"), by("city", "city")).Register(api, write...)
	inventory := handler.NewResourceHandler(crud.StoreInventory, "Store inventory item", byNumber("storeId", "store_id"), by("category", "category"))
	inventory.Register(api, write...)
	sales := handler.NewResourceHandler(crud.StoreSales, "Store sales record",
		byNumber("storeId", "store_id"), byNumber("month", "month"), byNumber("year", "year"))
	sales.Register(api, write...)
	staff := handler.NewResourceHandler(crud.StoreStaff, "Store staff member", byNumber("storeId", "store_id"))
	staff.Register(api, write...)
	displays := handler.NewResourceHandler(crud.StoreDisplays, "Store display", byNumber("storeId", "store_id"))
	displays.Register(api, write...)
	schedules := handler.NewResourceHandler(crud.StoreSchedules, "Store schedule",
		byNumber("storeId", "store_id"), byNumber("staffId", "staff_id"))
	schedules.Register(api, write...)
	keyholders := handler.NewResourceHandler(crud.KeyholderAssignments, "Keyholder assignment",
		byNumber("storeId", "store_id"), byNumber("staffId", "staff_id"))
	keyholders.Register(api, write...)
	handler.NewResourceHandler(crud.CorporateMessages, "Corporate message", by("priority", "priority")).Register(api, write...)
	acks := handler.NewResourceHandler(crud.MessageAcknowledgments, "Message acknowledgment",
		byNumber("messageId", "message_id"), byNumber("storeId", "store_id"))
	acks.Register(api, write...)

	api.GET("/stores/:id/inventory", inventory.ListChildren("store_id"))
	api.GET("/stores/:id/sales", sales.ListChildren("store_id"))
	api.GET("/stores/:id/staff", staff.ListChildren("store_id"))
	api.GET("/stores/:id/displays", displays.ListChildren("store_id"))
	api.GET("/stores/:id/schedules", schedules.ListChildren("store_id"))
	api.GET("/stores/:id/keyholders", keyholders.ListChildren("store_id"))
	api.GET("/corporate-messages/:id/acknowledgments", acks.ListChildren("message_id"))

	// Manufacturing / supply chain
	handler.NewResourceHandler(crud.Manufacturers, "Manufacturer", by("status", "status")).Register(api, write...)
	handler.NewResourceHandler(crud.Products, "Product", by("category", "category")).Register(api, write...)
	handler.NewResourceHandler(crud.ProductionOrders, "Production order",
		byNumber("manufacturerId", "manufacturer_id"), byNumber("productId", "product_id"), by("status", "status")).Register(api, write...)
	handler.NewResourceHandler(crud.Shipments, "Shipment",
		byNumber("productionOrderId", "production_order_id"), by("status", "status")).Register(api, write...)
	handler.NewResourceHandler(crud.ManufacturingMetrics, "Manufacturing metrics",
		byNumber("manufacturerId", "manufacturer_id"), by("period", "period")).Register(api, write...)
	handler.NewResourceHandler(crud.SupplyChainKpis, "Supply chain KPIs", by("period", "period")).Register(api, write...)

	// Facilities
	handler.NewResourceHandler(crud.Facilities, "Facility", by("facilityType", "facility_type")).Register(api, write...)
	handler.NewResourceHandler(crud.MaintenanceRequests, "Maintenance request",
		byNumber("facilityId", "facility_id"), by("status", "status"), by("priority", "priority")).Register(api, write...)

	// Licensing
	handler.NewResourceHandler(crud.CorporateLicensePacks, "Corporate license pack", by("status", "status")).Register(api, write...)
	entitlements := handler.NewResourceHandler(crud.EntitlementLicenses, "Entitlement license",
		byNumber("packId", "pack_id"), by("status", "status"))
	entitlements.Register(api, write...)
	specialized := handler.NewResourceHandler(crud.SpecializedLicenses, "Specialized license",
		byNumber("packId", "pack_id"), by("status", "status"))
	specialized.Register(api, write...)
	handler.NewResourceHandler(crud.UserLicenseAssignments, "User license assignment",
		byNumber("userId", "user_id"), by("licenseType", "license_type"), byNumber("licenseId", "license_id")).Register(api, write...)

	api.GET("/corporate-license-packs/:id/entitlement-licenses", entitlements.ListChildren("pack_id"))
	api.GET("/corporate-license-packs/:id/specialized-licenses", specialized.ListChildren("pack_id"))

	// Zero Trust
	handler.NewResourceHandler(crud.ZeroTrustPolicies, "Zero trust policy", by("status", "status"), by("policyType", "policy_type")).Register(api, write...)
	handler.NewResourceHandler(crud.ConditionalAccessAnalytics, "Conditional access analytics", by("period", "period")).Register(api, write...)
	handler.NewResourceHandler(crud.MfaFatigueMetrics, "MFA fatigue metrics", by("period", "period")).Register(api, write...)
	handler.NewResourceHandler(crud.ZeroTrustKpis, "Zero trust KPIs", by("period", "period")).Register(api, write...)
	handler.NewResourceHandler(crud.SecurityIncidents, "Security incident", by("status", "status"), by("severity", "severity")).Register(api, write...)

	// Documentation
	handler.NewResourceHandler(crud.DocumentCategories, "Document category", byNumber("parentId", "parent_id")).Register(api, write...)
	handler.NewResourceHandler(crud.Documents, "Document", byNumber("categoryId", "category_id"), by("status", "status")).Register(api, write...)
	revisions := handler.NewResourceHandler(crud.DocumentRevisions, "Document revision", byNumber("documentId", "document_id"))
	revisions.Register(api, write...)
	feedback := handler.NewResourceHandler(crud.DocumentFeedback, "Document feedback", byNumber("documentId", "document_id"))
	feedback.Register(api, write...)
	improvements := handler.NewResourceHandler(crud.AiDocumentImprovements, "AI document improvement",
		byNumber("documentId", "document_id"), by("status", "status"))
	improvements.Register(api, write...)
	analytics := handler.NewResourceHandler(crud.DocumentAnalytics, "Document analytics", byNumber("documentId", "document_id"))
	analytics.Register(api, write...)

	api.GET("/documents/:id/revisions", revisions.ListChildren("document_id"))
	api.GET("/documents/:id/feedback", feedback.ListChildren("document_id"))
	api.GET("/documents/:id/ai-improvements", improvements.ListChildren("document_id"))
	api.GET("/documents/:id/analytics", analytics.ListChildren("document_id"))
}
