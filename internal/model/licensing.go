package model

import (
	"fmt"
	"time"
)

// CorporateLicensePack is a bulk license purchase from which individual licenses are drawn.
type CorporateLicensePack struct {
	Base
	Brand            string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	VendorName       string     `gorm:"type:varchar(255);not null" json:"vendorName" binding:"required"`
	ProductName      string     `gorm:"type:varchar(255);not null" json:"productName" binding:"required"`
	LicenseType      string     `gorm:"type:varchar(100)" json:"licenseType"`
	TotalLicenses    int        `gorm:"not null" json:"totalLicenses" binding:"required,gt=0"`
	AssignedLicenses int        `json:"assignedLicenses" binding:"gte=0"`
	CostPerLicense   float64    `gorm:"type:decimal(12,2)" json:"costPerLicense" binding:"gte=0"`
	TotalCost        float64    `gorm:"type:decimal(12,2);not null" json:"totalCost" binding:"required,gte=0"`
	PurchaseDate     *time.Time `json:"purchaseDate"`
	RenewalDate      *time.Time `json:"renewalDate"`
	Status           string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=active expired pending cancelled"`
}

func (CorporateLicensePack) TableName() string { return "corporate_license_packs" }

// EntitlementLicense is a standard seat drawn from a CorporateLicensePack.
type EntitlementLicense struct {
	Base
	Brand        string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	PackID       uint       `gorm:"index;not null" json:"packId" binding:"required"`
	ProductName  string     `gorm:"type:varchar(255);not null" json:"productName" binding:"required"`
	LicenseKey   string     `gorm:"type:varchar(255)" json:"licenseKey"`
	AssignedTo   string     `gorm:"type:varchar(255)" json:"assignedTo"`
	AssignedDate *time.Time `json:"assignedDate"`
	Status       string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=available assigned revoked expired"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

func (EntitlementLicense) TableName() string { return "entitlement_licenses" }

// SpecializedLicense is a feature-specific license, optionally drawn from a pack.
type SpecializedLicense struct {
	Base
	Brand       string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	PackID      *uint      `gorm:"index" json:"packId"`
	ProductName string     `gorm:"type:varchar(255);not null" json:"productName" binding:"required"`
	LicenseKey  string     `gorm:"type:varchar(255)" json:"licenseKey"`
	Features    StringList `json:"features"`
	AssignedTo  string     `gorm:"type:varchar(255)" json:"assignedTo"`
	Status      string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=available assigned revoked expired"`
	Cost        float64    `gorm:"type:decimal(12,2)" json:"cost" binding:"gte=0"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

func (SpecializedLicense) TableName() string { return "specialized_licenses" }

// LicenseKind discriminates which table a LicenseRef points into.
type LicenseKind string

const (
	LicenseKindEntitlement LicenseKind = "entitlement"
	LicenseKindSpecialized LicenseKind = "specialized"
	LicenseKindPack        LicenseKind = "pack"
)

// Valid reports whether k is one of the known kinds.
func (k LicenseKind) Valid() bool {
	switch k {
	case LicenseKindEntitlement, LicenseKindSpecialized, LicenseKindPack:
		return true
	}
	return false
}

// LicenseRef is a typed reference to one of the three license tables.
type LicenseRef struct {
	Kind LicenseKind
	ID   uint
}

func (r LicenseRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// UserLicenseAssignment grants a license to a user. The license is addressed by
// (licenseType, licenseId); use Ref to obtain the typed reference.
type UserLicenseAssignment struct {
	Base
	Brand        string      `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	UserID       uint        `gorm:"index;not null" json:"userId" binding:"required"`
	LicenseType  LicenseKind `gorm:"type:varchar(30);not null" json:"licenseType" binding:"required,oneof=entitlement specialized pack"`
	LicenseID    uint        `gorm:"index;not null" json:"licenseId" binding:"required"`
	AssignedDate *time.Time  `json:"assignedDate"`
	AssignedBy   string      `gorm:"type:varchar(255)" json:"assignedBy"`
	Status       string      `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=active revoked expired"`
	Notes        string      `gorm:"type:text" json:"notes"`
}

func (UserLicenseAssignment) TableName() string { return "user_license_assignments" }

// Ref returns the typed license reference of the assignment.
func (a UserLicenseAssignment) Ref() LicenseRef {
	return LicenseRef{Kind: a.LicenseType, ID: a.LicenseID}
}
