package model

import (
	"time"

	"gorm.io/datatypes"
)

// ModuleRecordModel is the shared GORM struct for every per-module telemetry
// table. The catalog maps a module name to its table, and the repository
// selects the table explicitly; all module tables share this schema. One row
// per device, replaced in full on every ingestion.
type ModuleRecordModel struct {
	DeviceID    string            `gorm:"type:text;primaryKey"`
	Module      string            `gorm:"type:text;not null"`
	Document    datatypes.JSONMap `gorm:"type:jsonb"`
	CollectedAt time.Time
	UpdatedAt   time.Time
}
