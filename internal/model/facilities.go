package model

import "time"

// Facility is a building or site under facilities management.
type Facility struct {
	Base
	Brand         string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name          string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	FacilityType  string `gorm:"type:varchar(100);not null" json:"facilityType" binding:"required"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	SquareFootage int    `json:"squareFootage" binding:"gte=0"`
	Status        string `gorm:"type:varchar(30)" json:"status"`
	Manager       string `gorm:"type:varchar(255)" json:"manager"`
	Capacity      int    `json:"capacity" binding:"gte=0"`
	Occupancy     int    `json:"occupancy" binding:"gte=0"`
}

func (Facility) TableName() string { return "facilities" }

// MaintenanceRequest is a work order raised against a Facility.
type MaintenanceRequest struct {
	Base
	Brand         string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	FacilityID    uint       `gorm:"index;not null" json:"facilityId" binding:"required"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title" binding:"required"`
	Description   string     `gorm:"type:text" json:"description"`
	Priority      string     `gorm:"type:varchar(20)" json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status        string     `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=open scheduled in_progress completed cancelled"`
	RequestedBy   string     `gorm:"type:varchar(255)" json:"requestedBy"`
	AssignedTo    string     `gorm:"type:varchar(255)" json:"assignedTo"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Cost          float64    `gorm:"type:decimal(12,2)" json:"cost" binding:"gte=0"`
}

func (MaintenanceRequest) TableName() string { return "maintenance_requests" }
