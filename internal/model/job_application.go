package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobApplication is a single application a user sent to a company.
type JobApplication struct {
	ID              uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey;index:idx_job_app_owner_id,priority:2"`
	UserID          uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index:idx_job_app_owner_id,priority:1;index:idx_job_app_owner_created,priority:1"`
	Company         string           `json:"company" gorm:"size:255;not null"`
	Position        string           `json:"position" gorm:"size:255;not null"`
	Source          string           `json:"source" gorm:"size:255;not null"`
	ApplicationDate time.Time        `json:"applicationDate" gorm:"not null"`
	Status          Status           `json:"status" gorm:"type:varchar(20);not null;default:'SENT'"`
	Notes           *string          `json:"notes" gorm:"type:text"`
	JobURL          *string          `json:"jobUrl" gorm:"size:2048"`
	SalaryMin       *decimal.Decimal `json:"salaryMin" gorm:"type:decimal(14,2)"`
	SalaryMax       *decimal.Decimal `json:"salaryMax" gorm:"type:decimal(14,2)"`
	SalaryCurrency  *SalaryCurrency  `json:"salaryCurrency" gorm:"type:varchar(3)"`
	SalaryPeriod    *SalaryPeriod    `json:"salaryPeriod" gorm:"type:varchar(10)"`
	SalaryType      *SalaryType      `json:"salaryType" gorm:"type:varchar(10)"`
	CreatedAt       time.Time        `json:"createdAt" gorm:"index:idx_job_app_owner_created,priority:2"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// BeforeCreate sets a time-ordered UUID before creating the record.
func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.ID = id
	}
	return nil
}
