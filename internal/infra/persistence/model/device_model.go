// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"
)

// DeviceModel is the GORM struct for the 'devices' table. The serial number
// is the primary key and the device ID carries its own unique index, so a
// concurrent writer that loses the identity race fails at the constraint
// level instead of slipping past the application pre-check.
type DeviceModel struct {
	SerialNumber  string `gorm:"type:text;primaryKey"`
	DeviceID      string `gorm:"type:text;uniqueIndex;not null"`
	Name          string `gorm:"type:text"`
	AssetTag      string `gorm:"type:text;index"`
	Status        string `gorm:"type:text;not null;default:active"`
	ClientVersion string `gorm:"type:text"`
	LastSeen      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
