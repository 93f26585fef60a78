package postgres

import (
	"context"

	"beacon/internal/domain/catalog"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// directoryModules are the module documents the identity resolver actually
// inspects: inventory for asset tags and alternate names, network and system
// for hostnames. The snapshot skips the other module tables.
var directoryModules = []string{"inventory", "network", "system"}

// directoryRepository implements the repository.DeviceDirectory interface
// with one full-directory read per call. No caching; the resolver's caller
// bounds the fetch with a context timeout.
type directoryRepository struct {
	db *gorm.DB
}

// NewDeviceDirectory is the constructor for directoryRepository.
func NewDeviceDirectory(db *gorm.DB) repository.DeviceDirectory {
	return &directoryRepository{
		db: db,
	}
}

// Snapshot lists every known device with its identity fields and the module
// documents relevant to resolution. Entries are ordered by serial number so
// first-entry-wins ties inside a resolution strategy stay deterministic.
func (repo *directoryRepository) Snapshot(ctx context.Context) ([]*entity.DirectoryEntry, error) {
	var deviceModels []*model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Order("serial_number").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	entries := make([]*entity.DirectoryEntry, 0, len(deviceModels))
	byDeviceID := make(map[string]*entity.DirectoryEntry, len(deviceModels))
	for _, deviceM := range deviceModels {
		entry := &entity.DirectoryEntry{
			SerialNumber: deviceM.SerialNumber,
			DeviceID:     deviceM.DeviceID,
			AssetTag:     deviceM.AssetTag,
			Name:         deviceM.Name,
			Modules:      make(map[string]map[string]any),
		}
		entries = append(entries, entry)
		byDeviceID[deviceM.DeviceID] = entry
	}

	for _, moduleName := range directoryModules {
		table, ok := catalog.TableFor(moduleName)
		if !ok {
			continue
		}

		var recordModels []*model.ModuleRecordModel
		if err := repo.db.WithContext(ctx).
			Table(table).
			Find(&recordModels).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to list %s records", moduleName)
		}

		for _, recordM := range recordModels {
			if entry, ok := byDeviceID[recordM.DeviceID]; ok {
				entry.Modules[moduleName] = mapFromJSONMap(recordM.Document)
			}
		}
	}

	return entries, nil
}
