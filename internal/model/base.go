// Package model defines the gorm models that make up the relational schema.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Brand codes used as the tenant discriminator on every brand-scoped table.
const (
	BrandBlorcs   = "blorcs"
	BrandShaypops = "shaypops"
	BrandTechnova = "technova"
	// BrandAll is a wildcard: rows tagged "all" are shared, and a list filter of "all" disables filtering.
	BrandAll = "all"
)

// BrandCodes lists the accepted values of every brand column.
var BrandCodes = []string{BrandBlorcs, BrandShaypops, BrandTechnova, BrandAll}

// DemoBrands are the three fictitious companies the dashboard ships data for.
var DemoBrands = []string{BrandBlorcs, BrandShaypops, BrandTechnova}

// IsBrand reports whether code is an accepted brand value.
func IsBrand(code string) bool {
	for _, b := range BrandCodes {
		if b == code {
			return true
		}
	}
	return false
}

// Base holds the columns shared by every table.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// PrimaryID returns the row id.
func (b Base) PrimaryID() uint {
	return b.ID
}

// StringList is a JSON encoded string array column (jsonb on Postgres).
type StringList = datatypes.JSONSlice[string]

// Strings builds a StringList from literals.
func Strings(values ...string) StringList {
	return StringList(values)
}

// TimePtr returns a pointer to t, convenient for optional timestamp columns.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) *time.Time {
	return TimePtr(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
