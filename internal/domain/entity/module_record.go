package entity

import (
	"time"
)

// ModuleRecord holds the latest document a device submitted for one telemetry
// module. Storage is latest-wins: each write fully replaces the prior document,
// and at most one record exists per (DeviceID, Module).
type ModuleRecord struct {
	DeviceID    string         `json:"device_id"`
	Module      string         `json:"module"`
	Document    map[string]any `json:"document"`
	CollectedAt time.Time      `json:"collected_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
