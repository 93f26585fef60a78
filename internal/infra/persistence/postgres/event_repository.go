package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// InsertBatch stores the given events in one multi-row insert.
func (repo *eventRepository) InsertBatch(ctx context.Context, events []*entity.Event) error {
	if len(events) == 0 {
		return nil
	}

	eventModels := make([]*model.EventModel, 0, len(events))
	for _, event := range events {
		eventModels = append(eventModels, &model.EventModel{
			ID:        event.ID,
			DeviceID:  event.DeviceID,
			Type:      string(event.Type),
			Message:   event.Message,
			Details:   toJSONMap(event.Details),
			Timestamp: event.Timestamp,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&eventModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert events")
	}

	return nil
}
