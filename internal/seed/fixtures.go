package seed

import (
	"fmt"
	"time"

	"bizops-dashboard/internal/model"
)

type fixture struct {
	brand     model.Brand
	corporate model.Corporate
	divisions []divisionFixture
	users     []model.User

	vendors []vendorFixture
	cloud   []model.CloudService

	serviceCategory model.ServiceCategory
	services        []serviceFixture

	stores   []storeFixture
	messages []model.CorporateMessage

	products             []model.Product
	manufacturers        []model.Manufacturer
	manufacturingMetrics model.ManufacturingMetrics
	supplyChain          model.SupplyChainKpis

	facilities []facilityFixture

	packs []packFixture

	policies          []model.ZeroTrustPolicy
	zeroTrust         []model.ZeroTrustKpis
	conditionalAccess []model.ConditionalAccessAnalytics
	mfaFatigue        []model.MfaFatigueMetrics
	securityIncidents []model.SecurityIncident

	categories []categoryFixture
}

type divisionFixture struct {
	division    model.Division
	departments []departmentFixture
}

type departmentFixture struct {
	department model.Department
	functions  []functionFixture
}

type functionFixture struct {
	function model.BusinessFunction
	personas []model.Persona
}

type vendorFixture struct {
	vendor     model.Vendor
	members    []model.VendorTeamMember
	agreements []model.VendorAgreement
	licenses   []licenseFixture
	incidents  []model.Incident
}

type licenseFixture struct {
	license       model.License
	expiresInDays int
}

type serviceFixture struct {
	service model.ItilService
	items   []model.ConfigurationItem
}

type storeFixture struct {
	store      model.Store
	inventory  []model.StoreInventory
	dailySales []float64
	staff      []model.StoreStaff
	displays   []model.StoreDisplay
}

type facilityFixture struct {
	facility model.Facility
	requests []model.MaintenanceRequest
}

type packFixture struct {
	pack         model.CorporateLicensePack
	renewsInDays int
	entitlements int
	specialized  []model.SpecializedLicense
}

type categoryFixture struct {
	category  model.DocumentCategory
	documents []model.Document
}

func orderNumber(brand string, n int) string {
	return fmt.Sprintf("PO-%s-%04d", brand, n+1)
}

func licenseKey(brand string, packID uint, n int) string {
	return fmt.Sprintf("%s-%d-%05d", brand, packID, n+1)
}

func period(now time.Time, monthsAgo int) string {
	return now.AddDate(0, -monthsAgo, 0).Format("2006-01")
}

func fixtures(now time.Time) []fixture {
	return []fixture{blorcs(now), shaypops(now), technova(now)}
}

func blorcs(now time.Time) fixture {
	return fixture{
		brand: model.Brand{
			Code: model.BrandBlorcs, Name: "Blorcs", Industry: "Specialty Retail",
			Description:  "Collectible toy retailer with mall and outlet stores",
			PrimaryColor: "#ff6b35", IsActive: true,
		},
		corporate: model.Corporate{Name: "Blorcs Holdings", Headquarters: "Columbus, OH", CEO: "Dana Whitfield"},
		divisions: []divisionFixture{
			{
				division: model.Division{Name: "Retail Operations", Head: "Marcus Lee"},
				departments: []departmentFixture{
					{
						department: model.Department{Name: "Store Operations", Manager: "Priya Nair", Budget: 2400000},
						functions: []functionFixture{{
							function: model.BusinessFunction{Name: "Store Management", Owner: "Priya Nair"},
							personas: []model.Persona{{
								Name:             "Store Manager",
								Description:      "Runs a single store day to day",
								Responsibilities: model.Strings("Staff scheduling", "Inventory counts", "Cash handling"),
								RequiredTools:    model.Strings("POS", "Workforce Manager"),
							}},
						}},
					},
					{department: model.Department{Name: "Loss Prevention", Manager: "Tom Okafor", Budget: 650000}},
				},
			},
			{
				division: model.Division{Name: "Corporate IT", Head: "Elena Ruiz"},
				departments: []departmentFixture{
					{department: model.Department{Name: "Infrastructure", Manager: "Sam Patel", Budget: 1800000}},
				},
			},
		},
		users: []model.User{
			{Username: "blorcs.admin", Email: "admin@blorcs.example", FullName: "Blorcs Admin", Role: "admin", Status: "active"},
			{Username: "blorcs.pnair", Email: "priya.nair@blorcs.example", FullName: "Priya Nair", Role: "manager", Status: "active"},
		},
		vendors: []vendorFixture{
			{
				vendor: model.Vendor{
					Name: "Microsoft", Category: "Software", Status: model.VendorActive,
					ContactName: "Account Team", ContactEmail: "blorcs@microsoft.example",
					ContractValue: 97200, Rating: 4.5, Website: "https://microsoft.com",
				},
				members: []model.VendorTeamMember{
					{Name: "Jordan Blake", Role: "Account Executive", Email: "jordan.blake@microsoft.example", IsPrimary: true},
				},
				agreements: []model.VendorAgreement{
					{Title: "Enterprise Agreement", AgreementType: "EA", Status: "active", Value: 97200, RenewalTerms: "Annual true-up"},
				},
				licenses: []licenseFixture{
					{license: model.License{Name: "Microsoft 365 E3", LicenseType: "subscription", TotalSeats: 150, UsedSeats: 142, Cost: 68400, Status: "active"}, expiresInDays: 21},
					{license: model.License{Name: "Power BI Pro", LicenseType: "subscription", TotalSeats: 20, UsedSeats: 12, Cost: 2400, Status: "active"}, expiresInDays: 240},
				},
				incidents: []model.Incident{
					{Title: "Teams outage in Midwest stores", Severity: model.SeverityHigh, Status: model.IncidentOpen, Category: "availability", AssignedTo: "Sam Patel"},
				},
			},
			{
				vendor: model.Vendor{
					Name: "Zebra Technologies", Category: "Hardware", Status: model.VendorActive,
					ContactEmail: "support@zebra.example", ContractValue: 45000, Rating: 4.1,
				},
				incidents: []model.Incident{
					{Title: "Handheld scanner firmware crash", Severity: model.SeverityMedium, Status: model.IncidentResolved, Category: "hardware"},
				},
			},
		},
		cloud: []model.CloudService{
			{Name: "POS Backend", Provider: "Azure", ServiceType: "App Service", Status: "running", MonthlyCost: 3200, Region: "eastus", Owner: "Sam Patel"},
		},
		serviceCategory: model.ServiceCategory{Name: "Store Systems", Description: "Services used by stores", Icon: "store"},
		services: []serviceFixture{
			{
				service: model.ItilService{Name: "Point of Sale", ServiceOwner: "Sam Patel", Status: "operational", Criticality: "critical", SLATarget: 99.9, Availability: 99.95, SupportHours: "24x7"},
				items: []model.ConfigurationItem{
					{Name: "pos-db-01", CIType: "database", Status: "active", Environment: "production", IPAddress: "10.10.1.20"},
					{Name: "pos-api-01", CIType: "server", Status: "active", Environment: "production", IPAddress: "10.10.1.21"},
				},
			},
			{service: model.ItilService{Name: "Loyalty Program", ServiceOwner: "Marcus Lee", Status: "operational", Criticality: "high", SLATarget: 99.5, Availability: 99.7}},
		},
		stores: []storeFixture{
			{
				store: model.Store{Name: "Blorcs Easton", StoreNumber: "B-001", Address: "160 Easton Town Center", City: "Columbus", State: "OH", ZipCode: "43219", Manager: "Ava Chen", Status: "open", SquareFootage: 4200},
				inventory: []model.StoreInventory{
					{ProductName: "Blorc Plush Classic", SKU: "BLR-PL-001", Category: "Plush", Quantity: 84, ReorderLevel: 30, UnitPrice: 19.99},
					{ProductName: "Blorc Mystery Box", SKU: "BLR-MB-002", Category: "Blind Box", Quantity: 12, ReorderLevel: 40, UnitPrice: 12.99},
				},
				dailySales: []float64{5400, 4875.5, 6120},
				staff: []model.StoreStaff{
					{Name: "Ava Chen", Position: "Store Manager", Email: "ava.chen@blorcs.example", Status: "active", IsKeyholder: true},
					{Name: "Liam Ortiz", Position: "Sales Associate", Status: "active"},
				},
				displays: []model.StoreDisplay{{DisplayName: "Holiday Endcap", DisplayType: "endcap", Location: "Front aisle", Status: "installed"}},
			},
			{
				store:      model.Store{Name: "Blorcs Polaris", StoreNumber: "B-002", City: "Columbus", State: "OH", Manager: "Noah Kim", Status: "renovation", SquareFootage: 3600},
				dailySales: []float64{3100},
			},
		},
		messages: []model.CorporateMessage{
			{Title: "Holiday floor set", Content: "Complete the holiday floor set before Friday close.", Priority: "high", MessageType: "directive", SentBy: "Retail Operations", TargetStores: model.Strings("B-001", "B-002"), RequiresAcknowledgment: true},
		},
		products: []model.Product{
			{Name: "Blorc Plush Classic", SKU: "BLR-PL-001", Category: "Plush", UnitCost: 6.2, RetailPrice: 19.99, Status: "active"},
		},
		manufacturers: []model.Manufacturer{
			{Name: "Dongguan Soft Toys", Country: "China", ContactEmail: "sales@dgsofttoys.example", Certifications: model.Strings("ISO 9001", "ICTI"), Status: "active", CapacityPerMonth: 40000, LeadTimeDays: 45, QualityRating: 4.3},
		},
		manufacturingMetrics: model.ManufacturingMetrics{Period: period(now, 1), OnTimeDeliveryRate: 92.5, DefectRate: 1.8, CapacityUtilization: 78, AverageLeadTime: 44, CostVariance: 2.1},
		supplyChain:          model.SupplyChainKpis{Period: period(now, 1), InventoryTurnover: 6.4, FillRate: 95.2, OrderCycleTime: 12.5, PerfectOrderRate: 91, SupplierOnTimeRate: 93.4, TotalLogisticsCost: 184000},
		facilities: []facilityFixture{
			{
				facility: model.Facility{Name: "Columbus Distribution Center", FacilityType: "warehouse", City: "Columbus", SquareFootage: 120000, Status: "operational", Manager: "Rita Gomez", Capacity: 200, Occupancy: 164},
				requests: []model.MaintenanceRequest{
					{Title: "Dock door 4 sensor fault", Priority: "high", Status: "open", RequestedBy: "Rita Gomez", Cost: 850},
				},
			},
		},
		packs: []packFixture{
			{
				pack: model.CorporateLicensePack{
					VendorName: "Microsoft", ProductName: "Microsoft 365 E3", LicenseType: "subscription",
					TotalLicenses: 150, AssignedLicenses: 142, CostPerLicense: 456, TotalCost: 68400, Status: "active",
				},
				renewsInDays: 45,
				entitlements: 3,
			},
			{
				pack: model.CorporateLicensePack{
					VendorName: "Adobe", ProductName: "Creative Cloud", LicenseType: "subscription",
					TotalLicenses: 40, AssignedLicenses: 31, CostPerLicense: 720, TotalCost: 28800, Status: "active",
				},
				renewsInDays: 180,
				entitlements: 2,
				specialized: []model.SpecializedLicense{
					{ProductName: "Adobe Substance 3D", Features: model.Strings("3D texturing", "Material authoring"), AssignedTo: "Design Team", Status: "assigned", Cost: 600},
				},
			},
			{
				pack: model.CorporateLicensePack{
					VendorName: "Atlassian", ProductName: "Jira Service Management", LicenseType: "subscription",
					TotalLicenses: 10, AssignedLicenses: 8, CostPerLicense: 90, TotalCost: 900, Status: "active",
				},
				renewsInDays: 300,
				entitlements: 1,
			},
		},
		policies: []model.ZeroTrustPolicy{
			{Name: "Require MFA for POS admin", PolicyType: "conditional_access", Status: "active", EnforcementMode: "enforce", Conditions: model.Strings("role:pos-admin"), TargetGroups: model.Strings("Store Managers"), RiskLevel: "high"},
		},
		zeroTrust: []model.ZeroTrustKpis{
			{Period: period(now, 1), IdentityScore: 78, DeviceScore: 64, NetworkScore: 70, ApplicationScore: 72, DataScore: 68, OverallScore: 70.4},
		},
		conditionalAccess: []model.ConditionalAccessAnalytics{
			{PolicyName: "Require MFA for POS admin", Period: period(now, 1), TotalEvaluations: 4200, AllowedCount: 4010, BlockedCount: 60, MfaChallengedCount: 130, SuccessRate: 95.5},
		},
		mfaFatigue: []model.MfaFatigueMetrics{
			{UserIdentifier: "ava.chen@blorcs.example", Period: period(now, 1), PushAttempts: 48, DeniedPushes: 9, SuspiciousPatterns: 2, RiskScore: 72},
		},
		securityIncidents: []model.SecurityIncident{
			{Title: "Phishing campaign targeting store managers", Severity: model.SeverityHigh, Status: "investigating", IncidentType: "phishing", AffectedSystems: model.Strings("Exchange Online"), AssignedTo: "SOC"},
		},
		categories: []categoryFixture{
			{
				category: model.DocumentCategory{Name: "Store Procedures"},
				documents: []model.Document{
					{Title: "Opening checklist", Summary: "Steps to open a store", Author: "Retail Operations", Content: "Disarm the alarm, count the tills, power on POS terminals and check the daily message board.", Tags: model.Strings("stores", "daily")},
				},
			},
		},
	}
}

func shaypops(now time.Time) fixture {
	return fixture{
		brand: model.Brand{
			Code: model.BrandShaypops, Name: "Shaypops", Industry: "Consumer Goods",
			Description:  "Direct-to-consumer snack brand with pop-up retail",
			PrimaryColor: "#e91e63", IsActive: true,
		},
		corporate: model.Corporate{Name: "Shaypops Inc.", Headquarters: "Austin, TX", CEO: "Shay Morgan"},
		divisions: []divisionFixture{
			{
				division: model.Division{Name: "Supply Chain", Head: "Victor Alvarez"},
				departments: []departmentFixture{
					{
						department: model.Department{Name: "Procurement", Manager: "Hannah Price", Budget: 900000},
						functions: []functionFixture{{
							function: model.BusinessFunction{Name: "Supplier Management", Owner: "Hannah Price"},
							personas: []model.Persona{{
								Name:             "Buyer",
								Responsibilities: model.Strings("Purchase orders", "Supplier scorecards"),
								RequiredTools:    model.Strings("ERP", "Excel"),
							}},
						}},
					},
				},
			},
		},
		users: []model.User{
			{Username: "shaypops.admin", Email: "admin@shaypops.example", FullName: "Shaypops Admin", Role: "admin", Status: "active"},
		},
		vendors: []vendorFixture{
			{
				vendor: model.Vendor{Name: "Shopify", Category: "SaaS", Status: model.VendorActive, ContactEmail: "plus@shopify.example", ContractValue: 24000, Rating: 4.7},
				licenses: []licenseFixture{
					{license: model.License{Name: "Shopify Plus", LicenseType: "subscription", TotalSeats: 25, UsedSeats: 19, Cost: 24000, Status: "active"}, expiresInDays: 120},
				},
			},
			{
				vendor: model.Vendor{Name: "Packlane", Category: "Packaging", Status: model.VendorPending, ContractValue: 12500, Rating: 3.9},
				incidents: []model.Incident{
					{Title: "Late carton delivery", Severity: model.SeverityLow, Status: model.IncidentOpen, Category: "supply"},
				},
			},
		},
		serviceCategory: model.ServiceCategory{Name: "E-commerce", Icon: "cart"},
		services: []serviceFixture{
			{
				service: model.ItilService{Name: "Online Storefront", ServiceOwner: "Victor Alvarez", Status: "operational", Criticality: "critical", SLATarget: 99.9, Availability: 99.92},
				items: []model.ConfigurationItem{
					{Name: "storefront-cdn", CIType: "network", Status: "active", Environment: "production"},
					{Name: "checkout-fn", CIType: "application", Status: "active", Environment: "production"},
				},
			},
			{service: model.ItilService{Name: "Order Fulfilment", Status: "degraded", Criticality: "high", SLATarget: 99, Availability: 97.8}},
		},
		stores: []storeFixture{
			{
				store: model.Store{Name: "Shaypops SoCo Pop-up", StoreNumber: "S-101", City: "Austin", State: "TX", Manager: "Maya Brooks", Status: "open", SquareFootage: 900},
				inventory: []model.StoreInventory{
					{ProductName: "Sea Salt Popcorn", SKU: "SP-SS-12", Category: "Popcorn", Quantity: 240, ReorderLevel: 100, UnitPrice: 4.5},
				},
				dailySales: []float64{2150, 1980},
				staff: []model.StoreStaff{
					{Name: "Maya Brooks", Position: "Pop-up Lead", Status: "active", IsKeyholder: true},
				},
			},
		},
		messages: []model.CorporateMessage{
			{Title: "New flavour launch", Content: "Spicy Mango launches Saturday; set up tasting trays.", Priority: "normal", MessageType: "announcement", SentBy: "Marketing"},
		},
		products: []model.Product{
			{Name: "Sea Salt Popcorn", SKU: "SP-SS-12", Category: "Popcorn", UnitCost: 1.1, RetailPrice: 4.5, Status: "active"},
			{Name: "Spicy Mango Popcorn", SKU: "SP-SM-12", Category: "Popcorn", UnitCost: 1.3, RetailPrice: 4.99, Status: "active"},
		},
		manufacturers: []model.Manufacturer{
			{Name: "Lone Star Co-Packers", Country: "USA", Certifications: model.Strings("SQF", "Organic"), Status: "active", CapacityPerMonth: 120000, LeadTimeDays: 14, QualityRating: 4.6},
			{Name: "Monterrey Snacks", Country: "Mexico", Certifications: model.Strings("BRC"), Status: "active", CapacityPerMonth: 80000, LeadTimeDays: 21, QualityRating: 4.0},
		},
		manufacturingMetrics: model.ManufacturingMetrics{Period: period(now, 1), OnTimeDeliveryRate: 96.1, DefectRate: 0.7, CapacityUtilization: 85.5, AverageLeadTime: 16, CostVariance: -1.2},
		supplyChain:          model.SupplyChainKpis{Period: period(now, 1), InventoryTurnover: 11.2, FillRate: 97.8, OrderCycleTime: 4.5, PerfectOrderRate: 94.3, SupplierOnTimeRate: 95.9, TotalLogisticsCost: 62000},
		facilities: []facilityFixture{
			{facility: model.Facility{Name: "Austin Kitchen", FacilityType: "production", City: "Austin", SquareFootage: 18000, Status: "operational", Capacity: 40, Occupancy: 31}},
		},
		packs: []packFixture{
			{
				pack:         model.CorporateLicensePack{VendorName: "Google", ProductName: "Workspace Business", LicenseType: "subscription", TotalLicenses: 60, AssignedLicenses: 44, CostPerLicense: 144, TotalCost: 8640, Status: "active"},
				renewsInDays: 30,
				entitlements: 2,
			},
		},
		policies: []model.ZeroTrustPolicy{
			{Name: "Block legacy auth", PolicyType: "conditional_access", Status: "active", EnforcementMode: "monitor", RiskLevel: "medium"},
		},
		zeroTrust: []model.ZeroTrustKpis{
			{Period: period(now, 1), IdentityScore: 82, DeviceScore: 58, NetworkScore: 66, ApplicationScore: 75, DataScore: 61, OverallScore: 68.4},
		},
		categories: []categoryFixture{
			{
				category: model.DocumentCategory{Name: "Food Safety"},
				documents: []model.Document{
					{Title: "Allergen handling", Summary: "Allergen controls for pop-ups", Author: "Quality", Content: "Keep nut products sealed and label every tasting tray with allergen information.", Tags: model.Strings("food-safety")},
				},
			},
		},
	}
}

func technova(now time.Time) fixture {
	return fixture{
		brand: model.Brand{
			Code: model.BrandTechnova, Name: "TechNova", Industry: "Technology",
			Description:  "B2B software and hardware manufacturer",
			PrimaryColor: "#2962ff", IsActive: true,
		},
		corporate: model.Corporate{Name: "TechNova Systems", Headquarters: "San Jose, CA", CEO: "Rahul Menon"},
		divisions: []divisionFixture{
			{
				division: model.Division{Name: "Engineering", Head: "Grace Liu"},
				departments: []departmentFixture{
					{
						department: model.Department{Name: "Platform", Manager: "Omar Haddad", Budget: 5200000},
						functions: []functionFixture{{
							function: model.BusinessFunction{Name: "Site Reliability", Owner: "Omar Haddad"},
							personas: []model.Persona{{
								Name:             "SRE",
								Responsibilities: model.Strings("On-call", "Capacity planning", "Incident reviews"),
								RequiredTools:    model.Strings("Grafana", "PagerDuty", "Terraform"),
							}},
						}},
					},
					{department: model.Department{Name: "Security", Manager: "Ines Duarte", Budget: 2100000}},
				},
			},
		},
		users: []model.User{
			{Username: "technova.admin", Email: "admin@technova.example", FullName: "TechNova Admin", Role: "admin", Status: "active"},
			{Username: "technova.ohaddad", Email: "omar.haddad@technova.example", FullName: "Omar Haddad", Role: "engineer", Status: "active"},
		},
		vendors: []vendorFixture{
			{
				vendor: model.Vendor{Name: "Amazon Web Services", Category: "Cloud", Status: model.VendorActive, ContactEmail: "tam@aws.example", ContractValue: 480000, Rating: 4.6},
				members: []model.VendorTeamMember{
					{Name: "Chris Novak", Role: "Technical Account Manager", Email: "chris.novak@aws.example", IsPrimary: true},
				},
				agreements: []model.VendorAgreement{
					{Title: "Enterprise Discount Program", AgreementType: "commit", Status: "active", Value: 480000, RenewalTerms: "3 year commit"},
				},
				incidents: []model.Incident{
					{Title: "us-west-2 EBS latency", Severity: model.SeverityCritical, Status: model.IncidentInvestigating, Category: "availability", AssignedTo: "Omar Haddad"},
				},
			},
			{
				vendor: model.Vendor{Name: "JetBrains", Category: "Software", Status: model.VendorActive, ContractValue: 36000, Rating: 4.8},
				licenses: []licenseFixture{
					{license: model.License{Name: "IntelliJ IDEA Ultimate", LicenseType: "subscription", TotalSeats: 60, UsedSeats: 57, Cost: 36000, Status: "active"}, expiresInDays: 12},
				},
			},
		},
		cloud: []model.CloudService{
			{Name: "Telemetry Pipeline", Provider: "AWS", ServiceType: "MSK", Status: "running", MonthlyCost: 11800, Region: "us-west-2", Owner: "Omar Haddad"},
			{Name: "Build Farm", Provider: "AWS", ServiceType: "EC2", Status: "running", MonthlyCost: 7400, Region: "us-west-2", Owner: "Grace Liu"},
		},
		serviceCategory: model.ServiceCategory{Name: "Customer Platform", Icon: "cloud"},
		services: []serviceFixture{
			{
				service: model.ItilService{Name: "Device Management API", ServiceOwner: "Grace Liu", Status: "operational", Criticality: "critical", SLATarget: 99.95, Availability: 99.97, SupportHours: "24x7"},
				items: []model.ConfigurationItem{
					{Name: "eks-prod", CIType: "cluster", Status: "active", Environment: "production", Location: "us-west-2", Version: "1.29"},
					{Name: "device-api", CIType: "application", Status: "active", Environment: "production", Version: "4.12.0"},
					{Name: "device-db", CIType: "database", Status: "active", Environment: "production", IPAddress: "10.40.2.15"},
				},
			},
			{service: model.ItilService{Name: "Firmware Delivery", ServiceOwner: "Omar Haddad", Status: "operational", Criticality: "high", SLATarget: 99.5, Availability: 99.6}},
			{service: model.ItilService{Name: "Customer Portal", Status: "maintenance", Criticality: "medium", SLATarget: 99, Availability: 98.9}},
		},
		products: []model.Product{
			{Name: "Nova Edge Gateway", SKU: "TN-EG-200", Category: "Hardware", UnitCost: 142, RetailPrice: 399, Status: "active"},
		},
		manufacturers: []model.Manufacturer{
			{Name: "Hsinchu Electronics", Country: "Taiwan", Certifications: model.Strings("ISO 9001", "ISO 14001", "IPC-A-610"), Status: "active", CapacityPerMonth: 15000, LeadTimeDays: 60, QualityRating: 4.8},
		},
		manufacturingMetrics: model.ManufacturingMetrics{Period: period(now, 1), OnTimeDeliveryRate: 89.4, DefectRate: 0.4, CapacityUtilization: 91.2, AverageLeadTime: 58, CostVariance: 3.6},
		supplyChain:          model.SupplyChainKpis{Period: period(now, 1), InventoryTurnover: 4.1, FillRate: 92.6, OrderCycleTime: 21, PerfectOrderRate: 88.2, SupplierOnTimeRate: 90.1, TotalLogisticsCost: 312000},
		facilities: []facilityFixture{
			{
				facility: model.Facility{Name: "San Jose HQ", FacilityType: "office", City: "San Jose", SquareFootage: 85000, Status: "operational", Manager: "Lena Wolff", Capacity: 420, Occupancy: 301},
				requests: []model.MaintenanceRequest{
					{Title: "Server room CRAC unit service", Priority: "urgent", Status: "scheduled", RequestedBy: "Omar Haddad", AssignedTo: "Facilities", Cost: 4200},
					{Title: "Replace lobby badge readers", Priority: "medium", Status: "open", RequestedBy: "Ines Duarte", Cost: 3100},
				},
			},
		},
		packs: []packFixture{
			{
				pack:         model.CorporateLicensePack{VendorName: "JetBrains", ProductName: "All Products Pack", LicenseType: "subscription", TotalLicenses: 60, AssignedLicenses: 57, CostPerLicense: 600, TotalCost: 36000, Status: "active"},
				renewsInDays: 12,
				entitlements: 3,
			},
			{
				pack:         model.CorporateLicensePack{VendorName: "CrowdStrike", ProductName: "Falcon Enterprise", LicenseType: "subscription", TotalLicenses: 400, AssignedLicenses: 388, CostPerLicense: 185, TotalCost: 74000, Status: "active"},
				renewsInDays: 200,
				entitlements: 2,
				specialized: []model.SpecializedLicense{
					{ProductName: "Falcon OverWatch", Features: model.Strings("Managed threat hunting"), AssignedTo: "Security", Status: "assigned", Cost: 18000},
				},
			},
		},
		policies: []model.ZeroTrustPolicy{
			{Name: "Device compliance for production access", PolicyType: "device", Status: "active", EnforcementMode: "enforce", Conditions: model.Strings("device:compliant", "network:corp"), TargetGroups: model.Strings("Engineering"), RiskLevel: "critical"},
			{Name: "Session timeout for admin consoles", PolicyType: "session", Status: "draft", EnforcementMode: "monitor", RiskLevel: "medium"},
		},
		zeroTrust: []model.ZeroTrustKpis{
			{Period: period(now, 2), IdentityScore: 84, DeviceScore: 79, NetworkScore: 81, ApplicationScore: 77, DataScore: 74, OverallScore: 79},
			{Period: period(now, 1), IdentityScore: 88, DeviceScore: 83, NetworkScore: 82, ApplicationScore: 80, DataScore: 78, OverallScore: 82.2},
		},
		conditionalAccess: []model.ConditionalAccessAnalytics{
			{PolicyName: "Device compliance for production access", Period: period(now, 1), TotalEvaluations: 18500, AllowedCount: 17900, BlockedCount: 410, MfaChallengedCount: 190, SuccessRate: 96.8},
		},
		mfaFatigue: []model.MfaFatigueMetrics{
			{UserIdentifier: "omar.haddad@technova.example", Period: period(now, 1), PushAttempts: 22, DeniedPushes: 1, RiskScore: 18},
		},
		securityIncidents: []model.SecurityIncident{
			{Title: "Leaked CI token", Severity: model.SeverityCritical, Status: "contained", IncidentType: "credential_exposure", AffectedSystems: model.Strings("GitHub Actions", "ECR"), AssignedTo: "Ines Duarte"},
			{Title: "Port scan from unknown ASN", Severity: model.SeverityLow, Status: "closed", IncidentType: "reconnaissance"},
		},
		categories: []categoryFixture{
			{
				category: model.DocumentCategory{Name: "Runbooks"},
				documents: []model.Document{
					{Title: "Rotating CI credentials", Summary: "How to rotate pipeline secrets", Author: "Security", Content: "Revoke the token in the identity provider, update the secret store and restart affected runners.", Tags: model.Strings("security", "ci")},
					{Title: "EKS node upgrade", Summary: "Rolling node group upgrades", Author: "Platform", Content: "Cordon and drain nodes one availability zone at a time, then verify pod disruption budgets.", Tags: model.Strings("kubernetes")},
				},
			},
		},
	}
}
