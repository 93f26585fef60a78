package postgres

import (
	"context"

	"beacon/internal/domain/catalog"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// moduleRepository implements the repository.ModuleRepository interface.
type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository is the constructor for moduleRepository.
func NewModuleRepository(db *gorm.DB) repository.ModuleRepository {
	return &moduleRepository{
		db: db,
	}
}

// Upsert writes the record into the table the catalog maps its module to,
// replacing the stored document in full (latest-wins, no history).
func (repo *moduleRepository) Upsert(ctx context.Context, record *entity.ModuleRecord) error {
	table, ok := catalog.TableFor(record.Module)
	if !ok {
		return repository.ErrUnknownModule
	}

	recordM := &model.ModuleRecordModel{
		DeviceID:    record.DeviceID,
		Module:      record.Module,
		Document:    toJSONMap(record.Document),
		CollectedAt: record.CollectedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"module", "document", "collected_at", "updated_at"}),
		}).
		Create(recordM).Error
	if err != nil {
		return errors.Wrapf(err, "failed to upsert %s record", record.Module)
	}

	return nil
}

// --- Mapper Functions ---

func toJSONMap(src map[string]any) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	if src == nil {
		return out
	}
	for k, v := range src {
		out[k] = v
	}

	return out
}

func mapFromJSONMap(src datatypes.JSONMap) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
