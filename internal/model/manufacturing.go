package model

import "time"

// Manufacturer is a contract manufacturer producing Products.
type Manufacturer struct {
	Base
	Brand            string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Country          string     `gorm:"type:varchar(100)" json:"country"`
	ContactEmail     string     `gorm:"type:varchar(255)" json:"contactEmail" binding:"omitempty,email"`
	ContactPhone     string     `gorm:"type:varchar(50)" json:"contactPhone"`
	Certifications   StringList `json:"certifications"`
	Status           string     `gorm:"type:varchar(30)" json:"status"`
	CapacityPerMonth int        `json:"capacityPerMonth" binding:"gte=0"`
	LeadTimeDays     int        `json:"leadTimeDays" binding:"gte=0"`
	QualityRating    float64    `gorm:"type:decimal(3,1)" json:"qualityRating" binding:"gte=0,lte=5"`
}

func (Manufacturer) TableName() string { return "manufacturers" }

// Product is a sellable item.
type Product struct {
	Base
	Brand       string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	SKU         string  `gorm:"column:sku;type:varchar(100);not null" json:"sku" binding:"required"`
	Category    string  `gorm:"type:varchar(100)" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	UnitCost    float64 `gorm:"type:decimal(10,2)" json:"unitCost" binding:"gte=0"`
	RetailPrice float64 `gorm:"type:decimal(10,2)" json:"retailPrice" binding:"gte=0"`
	Status      string  `gorm:"type:varchar(30)" json:"status"`
}

func (Product) TableName() string { return "products" }

// ProductionOrder is an order placed with a Manufacturer for a Product.
type ProductionOrder struct {
	Base
	Brand            string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ManufacturerID   uint       `gorm:"index;not null" json:"manufacturerId" binding:"required"`
	ProductID        uint       `gorm:"index;not null" json:"productId" binding:"required"`
	OrderNumber      string     `gorm:"type:varchar(100);not null" json:"orderNumber" binding:"required"`
	Quantity         int        `gorm:"not null" json:"quantity" binding:"required,gt=0"`
	Status           string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=pending in_production completed shipped cancelled"`
	OrderDate        *time.Time `json:"orderDate"`
	ExpectedDelivery *time.Time `json:"expectedDelivery"`
	ActualDelivery   *time.Time `json:"actualDelivery"`
	TotalCost        float64    `gorm:"type:decimal(14,2)" json:"totalCost" binding:"gte=0"`
}

func (ProductionOrder) TableName() string { return "production_orders" }

// Shipment tracks goods moving from a manufacturer.
type Shipment struct {
	Base
	Brand             string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ProductionOrderID *uint      `gorm:"index" json:"productionOrderId"`
	TrackingNumber    string     `gorm:"type:varchar(100);not null" json:"trackingNumber" binding:"required"`
	Carrier           string     `gorm:"type:varchar(100)" json:"carrier"`
	Origin            string     `gorm:"type:varchar(255)" json:"origin"`
	Destination       string     `gorm:"type:varchar(255)" json:"destination"`
	Status            string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=pending in_transit delivered delayed"`
	ShippedDate       *time.Time `json:"shippedDate"`
	EstimatedArrival  *time.Time `json:"estimatedArrival"`
	ActualArrival     *time.Time `json:"actualArrival"`
}

func (Shipment) TableName() string { return "shipments" }

// ManufacturingMetrics is a per-period performance snapshot computed upstream.
type ManufacturingMetrics struct {
	Base
	Brand               string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ManufacturerID      *uint   `gorm:"index" json:"manufacturerId"`
	Period              string  `gorm:"type:varchar(20);not null" json:"period" binding:"required"`
	OnTimeDeliveryRate  float64 `gorm:"type:decimal(5,2)" json:"onTimeDeliveryRate"`
	DefectRate          float64 `gorm:"type:decimal(5,2)" json:"defectRate"`
	CapacityUtilization float64 `gorm:"type:decimal(5,2)" json:"capacityUtilization"`
	AverageLeadTime     float64 `gorm:"type:decimal(6,2)" json:"averageLeadTime"`
	CostVariance        float64 `gorm:"type:decimal(6,2)" json:"costVariance"`
}

func (ManufacturingMetrics) TableName() string { return "manufacturing_metrics" }

// SupplyChainKpis is a per-period supply chain snapshot computed upstream.
type SupplyChainKpis struct {
	Base
	Brand              string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Period             string  `gorm:"type:varchar(20);not null" json:"period" binding:"required"`
	InventoryTurnover  float64 `gorm:"type:decimal(6,2)" json:"inventoryTurnover"`
	FillRate           float64 `gorm:"type:decimal(5,2)" json:"fillRate"`
	OrderCycleTime     float64 `gorm:"type:decimal(6,2)" json:"orderCycleTime"`
	PerfectOrderRate   float64 `gorm:"type:decimal(5,2)" json:"perfectOrderRate"`
	SupplierOnTimeRate float64 `gorm:"type:decimal(5,2)" json:"supplierOnTimeRate"`
	TotalLogisticsCost float64 `gorm:"type:decimal(14,2)" json:"totalLogisticsCost"`
}

func (SupplyChainKpis) TableName() string { return "supply_chain_kpis" }
