// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no device matches the lookup.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceIdentityTaken is returned when an insert or update collides
	// with the uniqueness constraints on serial_number or device_id.
	ErrDeviceIdentityTaken = errors.New("device identity already taken")
)

// DeviceRepository defines device-related database operations.
type DeviceRepository interface {
	// FindByIdentity retrieves any device whose serial number OR device ID
	// matches the given values. Returns ErrDeviceNotFound when neither half
	// is known.
	FindByIdentity(ctx context.Context, serialNumber, deviceID string) (*entity.Device, error)

	// Create persists a new device. The storage layer enforces uniqueness on
	// both identity columns; a collision surfaces as ErrDeviceIdentityTaken.
	Create(ctx context.Context, device *entity.Device) error

	// UpdateMutable refreshes the mutable fields of an existing device keyed
	// by its serial number. The identity columns are never written.
	UpdateMutable(ctx context.Context, device *entity.Device) error
}
