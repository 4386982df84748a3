package model

// ServiceCategory groups ITIL services.
type ServiceCategory struct {
	Base
	Brand       string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(100)" json:"icon"`
}

func (ServiceCategory) TableName() string { return "service_categories" }

// ItilService is a business or technical service in the service catalogue.
type ItilService struct {
	Base
	Brand        string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	CategoryID   *uint   `gorm:"index" json:"categoryId"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description  string  `gorm:"type:text" json:"description"`
	ServiceOwner string  `gorm:"type:varchar(255)" json:"serviceOwner"`
	Status       string  `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=operational degraded outage maintenance retired"`
	Criticality  string  `gorm:"type:varchar(20)" json:"criticality" binding:"omitempty,oneof=low medium high critical"`
	SLATarget    float64 `gorm:"column:sla_target;type:decimal(5,2)" json:"slaTarget" binding:"gte=0,lte=100"`
	Availability float64 `gorm:"type:decimal(5,2)" json:"availability" binding:"gte=0,lte=100"`
	SupportHours string  `gorm:"type:varchar(100)" json:"supportHours"`
}

func (ItilService) TableName() string { return "itil_services" }

// ConfigurationItem is a tracked CMDB asset supporting a service.
type ConfigurationItem struct {
	Base
	Brand       string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ServiceID   *uint  `gorm:"index" json:"serviceId"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	CIType      string `gorm:"column:ci_type;type:varchar(100);not null" json:"ciType" binding:"required"`
	Status      string `gorm:"type:varchar(30)" json:"status"`
	Environment string `gorm:"type:varchar(50)" json:"environment"`
	Location    string `gorm:"type:varchar(255)" json:"location"`
	Owner       string `gorm:"type:varchar(255)" json:"owner"`
	Version     string `gorm:"type:varchar(50)" json:"version"`
	IPAddress   string `gorm:"column:ip_address;type:varchar(64)" json:"ipAddress" binding:"omitempty,ip"`
}

func (ConfigurationItem) TableName() string { return "configuration_items" }

// ServiceRelationship is a directed parent/child edge between two services.
type ServiceRelationship struct {
	Base
	Brand            string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ParentServiceID  uint   `gorm:"index;not null" json:"parentServiceId" binding:"required"`
	ChildServiceID   uint   `gorm:"index;not null" json:"childServiceId" binding:"required"`
	RelationshipType string `gorm:"type:varchar(50);not null" json:"relationshipType" binding:"required"`
	Description      string `gorm:"type:text" json:"description"`
}

func (ServiceRelationship) TableName() string { return "service_relationships" }

// CiRelationship is a directed parent/child edge between two configuration items.
type CiRelationship struct {
	Base
	Brand            string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	ParentCiID       uint   `gorm:"column:parent_ci_id;index;not null" json:"parentCiId" binding:"required"`
	ChildCiID        uint   `gorm:"column:child_ci_id;index;not null" json:"childCiId" binding:"required"`
	RelationshipType string `gorm:"type:varchar(50);not null" json:"relationshipType" binding:"required"`
	Description      string `gorm:"type:text" json:"description"`
}

func (CiRelationship) TableName() string { return "ci_relationships" }
