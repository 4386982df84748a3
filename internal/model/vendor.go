package model

import "time"

// Vendor statuses.
const (
	VendorActive   = "active"
	VendorInactive = "inactive"
	VendorPending  = "pending"
)

// Vendor is a supplier the company holds contracts and licenses with.
type Vendor struct {
	Base
	Brand         string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Category      string     `gorm:"type:varchar(100);not null" json:"category" binding:"required"`
	Status        string     `gorm:"type:varchar(30);not null" json:"status" binding:"required,oneof=active inactive pending"`
	ContactName   string     `gorm:"type:varchar(255)" json:"contactName"`
	ContactEmail  string     `gorm:"type:varchar(255)" json:"contactEmail" binding:"omitempty,email"`
	ContactPhone  string     `gorm:"type:varchar(50)" json:"contactPhone"`
	Website       string     `gorm:"type:varchar(500)" json:"website"`
	ContractValue float64    `gorm:"type:decimal(14,2)" json:"contractValue" binding:"gte=0"`
	ContractStart *time.Time `json:"contractStart"`
	ContractEnd   *time.Time `json:"contractEnd"`
	Rating        float64    `gorm:"type:decimal(3,1)" json:"rating" binding:"gte=0,lte=5"`
	Notes         string     `gorm:"type:text" json:"notes"`
}

func (Vendor) TableName() string { return "vendors" }

// VendorTeamMember is a contact person at a Vendor.
type VendorTeamMember struct {
	Base
	Brand     string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	VendorID  uint   `gorm:"index;not null" json:"vendorId" binding:"required"`
	Name      string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Role      string `gorm:"type:varchar(100)" json:"role"`
	Email     string `gorm:"type:varchar(255)" json:"email" binding:"omitempty,email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	IsPrimary bool   `gorm:"not null" json:"isPrimary"`
}

func (VendorTeamMember) TableName() string { return "vendor_team_members" }

// VendorAgreement is a contract document with a Vendor.
type VendorAgreement struct {
	Base
	Brand         string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	VendorID      uint       `gorm:"index;not null" json:"vendorId" binding:"required"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	AgreementType string     `gorm:"type:varchar(100)" json:"agreementType"`
	Status        string     `gorm:"type:varchar(30)" json:"status"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Value         float64    `gorm:"type:decimal(14,2)" json:"value" binding:"gte=0"`
	RenewalTerms  string     `gorm:"type:text" json:"renewalTerms"`
	DocumentURL   string     `gorm:"type:varchar(500)" json:"documentUrl"`
}

func (VendorAgreement) TableName() string { return "vendor_agreements" }

// License is a software license bought from a Vendor.
type License struct {
	Base
	Brand        string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	VendorID     *uint      `gorm:"index" json:"vendorId"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	LicenseType  string     `gorm:"type:varchar(100)" json:"licenseType"`
	TotalSeats   int        `json:"totalSeats" binding:"gte=0"`
	UsedSeats    int        `json:"usedSeats" binding:"gte=0"`
	Cost         float64    `gorm:"type:decimal(12,2)" json:"cost" binding:"gte=0"`
	Status       string     `gorm:"type:varchar(30);not null" json:"status" binding:"required,oneof=active expired pending cancelled"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	ExpiryDate   *time.Time `gorm:"index" json:"expiryDate"`
}

func (License) TableName() string { return "licenses" }

// Incident severities and statuses.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"

	IncidentOpen          = "open"
	IncidentInvestigating = "investigating"
	IncidentResolved      = "resolved"
	IncidentClosed        = "closed"
)

// Incident is an operational incident, optionally caused by a Vendor.
type Incident struct {
	Base
	Brand       string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Description string     `gorm:"type:text" json:"description"`
	Severity    string     `gorm:"type:varchar(20);not null" json:"severity" binding:"required,oneof=low medium high critical"`
	Status      string     `gorm:"type:varchar(30);not null" json:"status" binding:"required,oneof=open investigating resolved closed"`
	Category    string     `gorm:"type:varchar(100)" json:"category"`
	AssignedTo  string     `gorm:"type:varchar(255)" json:"assignedTo"`
	VendorID    *uint      `gorm:"index" json:"vendorId"`
	ReportedAt  *time.Time `json:"reportedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
}

func (Incident) TableName() string { return "incidents" }

// CloudService is a subscribed cloud product tracked on the cloud services page.
type CloudService struct {
	Base
	Brand       string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Provider    string  `gorm:"type:varchar(100);not null" json:"provider" binding:"required"`
	ServiceType string  `gorm:"type:varchar(100)" json:"serviceType"`
	Status      string  `gorm:"type:varchar(30)" json:"status"`
	MonthlyCost float64 `gorm:"type:decimal(12,2)" json:"monthlyCost" binding:"gte=0"`
	Region      string  `gorm:"type:varchar(100)" json:"region"`
	Owner       string  `gorm:"type:varchar(255)" json:"owner"`
}

func (CloudService) TableName() string { return "cloud_services" }
