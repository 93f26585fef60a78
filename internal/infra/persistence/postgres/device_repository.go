package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindByIdentity retrieves any device whose serial number OR device ID
// matches. One row at most can match each column thanks to the unique
// constraints, and a row matching either column is enough to decide the
// identity-pair invariant.
func (repo *deviceRepository) FindByIdentity(ctx context.Context, serialNumber, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("serial_number = ? OR device_id = ?", serialNumber, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identity")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a new device row. A losing concurrent writer fails here at
// the storage constraint rather than at the application pre-check.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDeviceIdentityTaken
		}

		return errors.Wrap(err, "failed to create device")
	}

	return nil
}

// UpdateMutable refreshes the mutable fields of an existing device. The
// identity columns are deliberately absent from the update set.
func (repo *deviceRepository) UpdateMutable(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("serial_number = ?", device.SerialNumber).
		Updates(map[string]any{
			"name":           device.Name,
			"asset_tag":      device.AssetTag,
			"status":         device.Status,
			"client_version": device.ClientVersion,
			"last_seen":      device.LastSeen,
			"updated_at":     device.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		SerialNumber:  data.SerialNumber,
		DeviceID:      data.DeviceID,
		Name:          data.Name,
		AssetTag:      data.AssetTag,
		Status:        data.Status,
		ClientVersion: data.ClientVersion,
		LastSeen:      data.LastSeen,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		SerialNumber:  data.SerialNumber,
		DeviceID:      data.DeviceID,
		Name:          data.Name,
		AssetTag:      data.AssetTag,
		Status:        data.Status,
		ClientVersion: data.ClientVersion,
		LastSeen:      data.LastSeen,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
