package model

import "time"

// Store is a retail location.
type Store struct {
	Base
	Brand         string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	StoreNumber   string     `gorm:"type:varchar(50);not null" json:"storeNumber" binding:"required"`
	Address       string     `gorm:"type:varchar(255)" json:"address"`
	City          string     `gorm:"type:varchar(100)" json:"city"`
	State         string     `gorm:"type:varchar(50)" json:"state"`
	ZipCode       string     `gorm:"type:varchar(20)" json:"zipCode"`
	Phone         string     `gorm:"type:varchar(50)" json:"phone"`
	Manager       string     `gorm:"type:varchar(255)" json:"manager"`
	Status        string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=open closed renovation opening_soon"`
	OpeningDate   *time.Time `json:"openingDate"`
	SquareFootage int        `json:"squareFootage" binding:"gte=0"`
}

func (Store) TableName() string { return "stores" }

// StoreInventory is one stocked SKU at a Store.
type StoreInventory struct {
	Base
	Brand         string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID       uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	ProductName   string     `gorm:"type:varchar(255);not null" json:"productName" binding:"required"`
	SKU           string     `gorm:"column:sku;type:varchar(100);not null" json:"sku" binding:"required"`
	Category      string     `gorm:"type:varchar(100)" json:"category"`
	Quantity      int        `json:"quantity" binding:"gte=0"`
	ReorderLevel  int        `json:"reorderLevel" binding:"gte=0"`
	UnitPrice     float64    `gorm:"type:decimal(10,2)" json:"unitPrice" binding:"gte=0"`
	LastRestocked *time.Time `json:"lastRestocked"`
}

func (StoreInventory) TableName() string { return "store_inventory" }

// StoreSales is a sales summary for a Store on a given day.
type StoreSales struct {
	Base
	Brand            string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID          uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	SaleDate         *time.Time `gorm:"not null" json:"saleDate" binding:"required"`
	Month            int        `gorm:"index" json:"month" binding:"gte=0,lte=12"`
	Year             int        `gorm:"index" json:"year" binding:"gte=0"`
	TotalSales       float64    `gorm:"type:decimal(12,2)" json:"totalSales" binding:"gte=0"`
	TransactionCount int        `json:"transactionCount" binding:"gte=0"`
	AverageTicket    float64    `gorm:"type:decimal(10,2)" json:"averageTicket" binding:"gte=0"`
	Category         string     `gorm:"type:varchar(100)" json:"category"`
}

func (StoreSales) TableName() string { return "store_sales" }

// StoreStaff is an employee working at a Store.
type StoreStaff struct {
	Base
	Brand       string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID     uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Position    string     `gorm:"type:varchar(100);not null" json:"position" binding:"required"`
	Email       string     `gorm:"type:varchar(255)" json:"email" binding:"omitempty,email"`
	Phone       string     `gorm:"type:varchar(50)" json:"phone"`
	HireDate    *time.Time `json:"hireDate"`
	Status      string     `gorm:"type:varchar(30)" json:"status"`
	IsKeyholder bool       `gorm:"not null" json:"isKeyholder"`
}

func (StoreStaff) TableName() string { return "store_staff" }

// StoreDisplay is a visual merchandising display at a Store.
type StoreDisplay struct {
	Base
	Brand       string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID     uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	DisplayName string     `gorm:"type:varchar(255);not null" json:"displayName" binding:"required"`
	DisplayType string     `gorm:"type:varchar(100)" json:"displayType"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	Status      string     `gorm:"type:varchar(30)" json:"status"`
	InstallDate *time.Time `json:"installDate"`
	Notes       string     `gorm:"type:text" json:"notes"`
}

func (StoreDisplay) TableName() string { return "store_displays" }

// StoreSchedule is one staff shift at a Store.
type StoreSchedule struct {
	Base
	Brand     string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID   uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	StaffID   *uint      `gorm:"index" json:"staffId"`
	ShiftDate *time.Time `gorm:"not null" json:"shiftDate" binding:"required"`
	StartTime string     `gorm:"type:varchar(10);not null" json:"startTime" binding:"required"`
	EndTime   string     `gorm:"type:varchar(10);not null" json:"endTime" binding:"required"`
	Role      string     `gorm:"type:varchar(100)" json:"role"`
}

func (StoreSchedule) TableName() string { return "store_schedules" }

// KeyholderAssignment records which staff member holds a Store's keys.
type KeyholderAssignment struct {
	Base
	Brand        string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	StoreID      uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	StaffID      uint       `gorm:"index;not null" json:"staffId" binding:"required"`
	AssignedDate *time.Time `json:"assignedDate"`
	Status       string     `gorm:"type:varchar(30)" json:"status"`
	KeyCount     int        `json:"keyCount" binding:"gte=0"`
	Notes        string     `gorm:"type:text" json:"notes"`
}

func (KeyholderAssignment) TableName() string { return "keyholder_assignments" }

// CorporateMessage is a communication pushed from head office to stores.
type CorporateMessage struct {
	Base
	Brand                  string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Title                  string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Content                string     `gorm:"type:text;not null" json:"content" binding:"required"`
	Priority               string     `gorm:"type:varchar(20)" json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	MessageType            string     `gorm:"type:varchar(50)" json:"messageType"`
	SentBy                 string     `gorm:"type:varchar(255)" json:"sentBy"`
	TargetStores           StringList `json:"targetStores"`
	RequiresAcknowledgment bool       `gorm:"not null" json:"requiresAcknowledgment"`
	ExpiresAt              *time.Time `json:"expiresAt"`
}

func (CorporateMessage) TableName() string { return "corporate_messages" }

// MessageAcknowledgment links a CorporateMessage to a Store that confirmed reading it.
type MessageAcknowledgment struct {
	Base
	Brand          string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	MessageID      uint       `gorm:"index;not null" json:"messageId" binding:"required"`
	StoreID        uint       `gorm:"index;not null" json:"storeId" binding:"required"`
	AcknowledgedBy string     `gorm:"type:varchar(255);not null" json:"acknowledgedBy" binding:"required"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt"`
	Notes          string     `gorm:"type:text" json:"notes"`
}

func (MessageAcknowledgment) TableName() string { return "message_acknowledgments" }
