// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Device represents a managed endpoint known to the fleet.
//
// SerialNumber and DeviceID form an immutable identity pair: once a
// (serialNumber, deviceId) pair has been committed, no later write may
// associate either half with a different partner. All other fields are
// refreshed on every ingestion.
type Device struct {
	SerialNumber  string    `json:"serial_number"`  // Human-readable primary identifier.
	DeviceID      string    `json:"device_id"`      // System-generated identifier, 1:1 with the serial number.
	Name          string    `json:"name,omitempty"` // Operator-facing display name.
	AssetTag      string    `json:"asset_tag,omitempty"`
	Status        string    `json:"status,omitempty"`
	ClientVersion string    `json:"client_version,omitempty"`
	LastSeen      time.Time `json:"last_seen"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
