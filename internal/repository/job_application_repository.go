package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobtracker/internal/errors"
	"jobtracker/internal/model"
)

// ListFilter narrows and pages a job application listing.
type ListFilter struct {
	Status *model.Status
	From   *time.Time
	To     *time.Time
	Query  string
	Offset int
	Limit  int
}

// JobApplicationRepository defines job application persistence operations.
// Every read and write is scoped to an owner.
type JobApplicationRepository interface {
	Create(ctx context.Context, app *model.JobApplication) error
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.JobApplication, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]model.JobApplication, int64, error)
	Update(ctx context.Context, app *model.JobApplication, fields map[string]any) error
	Delete(ctx context.Context, app *model.JobApplication) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type jobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository creates a new job application repository.
func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

// Create creates a new job application record.
func (r *jobApplicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("create job application: %w", err)
	}
	return nil
}

// FindOwned returns the application only when ownerID owns it.
// Missing and foreign rows both yield ErrNotFound.
func (r *jobApplicationRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&app).Error
	if err != nil {
		return nil, notFoundOr(err, "find job application")
	}
	return &app, nil
}

// List returns one page of the owner's applications and the total match count.
// Both queries run in the same read transaction.
func (r *jobApplicationRepository) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]model.JobApplication, int64, error) {
	var (
		items []model.JobApplication
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.JobApplication{}).
			Scopes(ownedBy(ownerID), filter.apply).
			Count(&total).Error; err != nil {
			return fmt.Errorf("count job applications: %w", err)
		}
		if total == 0 || int64(filter.Offset) >= total {
			return nil
		}
		if err := tx.Scopes(ownedBy(ownerID), filter.apply).
			Order("created_at DESC").
			Order("application_date DESC").
			Order("id DESC").
			Offset(filter.Offset).
			Limit(filter.Limit).
			Find(&items).Error; err != nil {
			return fmt.Errorf("list job applications: %w", err)
		}
		return nil
	}, snapshotTxOptions(r.db))
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update writes fields to the owned row identified by app.
// Callers resolve app through FindOwned first; MySQL reports zero affected
// rows for unchanged values, so the count is not checked here.
func (r *jobApplicationRepository) Update(ctx context.Context, app *model.JobApplication, fields map[string]any) error {
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("id = ? AND user_id = ?", app.ID, app.UserID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("update job application: %w", err)
	}
	return nil
}

// Delete removes the owned row identified by app. History rows are kept.
func (r *jobApplicationRepository) Delete(ctx context.Context, app *model.JobApplication) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", app.ID, app.UserID).
		Delete(&model.JobApplication{})
	if res.Error != nil {
		return fmt.Errorf("delete job application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByOwner removes every application of ownerID.
func (r *jobApplicationRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Delete(&model.JobApplication{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete job applications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func ownedBy(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	}
}

func (f ListFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	if f.From != nil {
		db = db.Where("application_date >= ?", *f.From)
	}
	if f.To != nil {
		db = db.Where("application_date <= ?", *f.To)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		db = db.Where("(LOWER(company) LIKE ? ESCAPE '!' OR LOWER(position) LIKE ? ESCAPE '!')", pattern, pattern)
	}
	return db
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// snapshotTxOptions asks servers that support it for a repeatable-read
// snapshot so the count and the page agree.
func snapshotTxOptions(db *gorm.DB) *sql.TxOptions {
	switch db.Dialector.Name() {
	case "mysql", "postgres":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	default:
		return nil
	}
}
