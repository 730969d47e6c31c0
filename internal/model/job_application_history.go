package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HistoryType names the kind of audit event.
type HistoryType string

const (
	HistoryCreated       HistoryType = "CREATED"
	HistoryStatusChanged HistoryType = "STATUS_CHANGED"
)

// JobApplicationHistory is an append-only audit row for a job application.
// Rows are never updated and survive deletion of their application.
type JobApplicationHistory struct {
	ID               uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	JobApplicationID uuid.UUID      `json:"jobApplicationId" gorm:"type:char(36);not null;index:idx_job_app_history_app_created,priority:1"`
	Type             HistoryType    `json:"type" gorm:"type:varchar(20);not null"`
	Meta             datatypes.JSON `json:"-"`
	ActorUserID      uuid.UUID      `json:"actorUserId" gorm:"type:char(36);not null"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"index:idx_job_app_history_app_created,priority:2"`
}

// BeforeCreate sets a time-ordered UUID before creating the record.
func (h *JobApplicationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		h.ID = id
	}
	return nil
}

// StatusChange is the meta payload of a STATUS_CHANGED event.
type StatusChange struct {
	From Status `json:"from"`
	To   Status `json:"to"`
}

// statusChangeRecord is the stored form; it keeps internal codes rather than API tokens.
type statusChangeRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewStatusChangeMeta encodes a transition for storage.
func NewStatusChangeMeta(from, to Status) datatypes.JSON {
	raw, _ := json.Marshal(statusChangeRecord{From: string(from), To: string(to)})
	return datatypes.JSON(raw)
}

// EmptyMeta is the meta stored for events that carry no payload.
func EmptyMeta() datatypes.JSON {
	return datatypes.JSON("{}")
}

// StatusChange decodes the from/to pair of a STATUS_CHANGED event.
// ok is false for other event types or undecodable meta.
func (h JobApplicationHistory) StatusChange() (StatusChange, bool) {
	if h.Type != HistoryStatusChanged || len(h.Meta) == 0 {
		return StatusChange{}, false
	}
	var rec statusChangeRecord
	if err := json.Unmarshal(h.Meta, &rec); err != nil {
		return StatusChange{}, false
	}
	from, to := Status(rec.From), Status(rec.To)
	if !from.Valid() || !to.Valid() {
		return StatusChange{}, false
	}
	return StatusChange{From: from, To: to}, true
}
