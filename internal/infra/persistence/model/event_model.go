package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel is the GORM struct for the 'device_events' table. Rows are
// insert-only; event types are validated against the closed severity set
// before they ever reach this table.
type EventModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	DeviceID  string            `gorm:"type:text;not null;index"`
	Type      string            `gorm:"type:text;not null"`
	Message   string            `gorm:"type:text"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	Timestamp time.Time         `gorm:"column:ts;not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "device_events"
}
