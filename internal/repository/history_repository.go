package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobtracker/internal/model"
)

// HistoryRepository appends and reads job application audit events.
// There is no update or delete: events are immutable.
type HistoryRepository interface {
	RecordCreated(ctx context.Context, appID, actorID uuid.UUID, at time.Time) error
	RecordStatusChanged(ctx context.Context, appID, actorID uuid.UUID, from, to model.Status, at time.Time) error
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]model.JobApplicationHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) RecordCreated(ctx context.Context, appID, actorID uuid.UUID, at time.Time) error {
	return r.append(ctx, &model.JobApplicationHistory{
		JobApplicationID: appID,
		Type:             model.HistoryCreated,
		Meta:             model.EmptyMeta(),
		ActorUserID:      actorID,
		CreatedAt:        at.UTC(),
	})
}

func (r *historyRepository) RecordStatusChanged(ctx context.Context, appID, actorID uuid.UUID, from, to model.Status, at time.Time) error {
	return r.append(ctx, &model.JobApplicationHistory{
		JobApplicationID: appID,
		Type:             model.HistoryStatusChanged,
		Meta:             model.NewStatusChangeMeta(from, to),
		ActorUserID:      actorID,
		CreatedAt:        at.UTC(),
	})
}

// ListByApplication returns events oldest first.
func (r *historyRepository) ListByApplication(ctx context.Context, appID uuid.UUID) ([]model.JobApplicationHistory, error) {
	var events []model.JobApplicationHistory
	if err := r.db.WithContext(ctx).
		Where("job_application_id = ?", appID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list job application history: %w", err)
	}
	return events, nil
}

func (r *historyRepository) append(ctx context.Context, event *model.JobApplicationHistory) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("record %s history: %w", event.Type, err)
	}
	return nil
}
