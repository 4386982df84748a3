package model

// Brand describes one of the companies whose data the dashboard partitions by code.
type Brand struct {
	Base
	Code         string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" binding:"required,brand"`
	Name         string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description  string `gorm:"type:text" json:"description"`
	Industry     string `gorm:"type:varchar(100)" json:"industry"`
	PrimaryColor string `gorm:"type:varchar(20)" json:"primaryColor"`
	LogoURL      string `gorm:"type:varchar(500)" json:"logoUrl"`
	IsActive     bool   `gorm:"not null" json:"isActive"`
}

func (Brand) TableName() string { return "brands" }

// Corporate is the root of the organizational hierarchy.
type Corporate struct {
	Base
	Brand        string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	Name         string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description  string `gorm:"type:text" json:"description"`
	Headquarters string `gorm:"type:varchar(255)" json:"headquarters"`
	CEO          string `gorm:"column:ceo;type:varchar(255)" json:"ceo"`
}

func (Corporate) TableName() string { return "corporates" }

// Division belongs to a Corporate.
type Division struct {
	Base
	Brand       string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	CorporateID uint   `gorm:"index;not null" json:"corporateId" binding:"required"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description string `gorm:"type:text" json:"description"`
	Head        string `gorm:"type:varchar(255)" json:"head"`
}

func (Division) TableName() string { return "divisions" }

// Department belongs to a Division.
type Department struct {
	Base
	Brand       string  `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DivisionID  uint    `gorm:"index;not null" json:"divisionId" binding:"required"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Manager     string  `gorm:"type:varchar(255)" json:"manager"`
	Budget      float64 `gorm:"type:decimal(14,2)" json:"budget" binding:"gte=0"`
}

func (Department) TableName() string { return "departments" }

// BusinessFunction belongs to a Department.
type BusinessFunction struct {
	Base
	Brand        string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	DepartmentID uint   `gorm:"index;not null" json:"departmentId" binding:"required"`
	Name         string `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description  string `gorm:"type:text" json:"description"`
	Owner        string `gorm:"type:varchar(255)" json:"owner"`
}

func (BusinessFunction) TableName() string { return "business_functions" }

// Persona belongs to a BusinessFunction and describes a typical role.
type Persona struct {
	Base
	Brand            string     `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	FunctionID       uint       `gorm:"index;not null" json:"functionId" binding:"required"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name" binding:"required"`
	Description      string     `gorm:"type:text" json:"description"`
	Responsibilities StringList `json:"responsibilities"`
	RequiredTools    StringList `json:"requiredTools"`
}

func (Persona) TableName() string { return "personas" }

// User is a dashboard user, optionally attached to a Persona.
type User struct {
	Base
	Brand     string `gorm:"type:varchar(50);index;not null" json:"brand" binding:"required,brand"`
	PersonaID *uint  `gorm:"index" json:"personaId"`
	Username  string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" binding:"required"`
	Email     string `gorm:"type:varchar(255);not null" json:"email" binding:"required,email"`
	FullName  string `gorm:"type:varchar(255)" json:"fullName"`
	Role      string `gorm:"type:varchar(50)" json:"role"`
	Status    string `gorm:"type:varchar(30)" json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

func (User) TableName() string { return "users" }
