package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups repositories that share one database handle.
type Repositories struct {
	Users        UserRepository
	Applications JobApplicationRepository
	History      HistoryRepository
}

// NewRepositories binds every repository to db.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:        NewUserRepository(db),
		Applications: NewJobApplicationRepository(db),
		History:      NewHistoryRepository(db),
	}
}

// UnitOfWork runs a function against repositories bound to one transaction.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a GORM-backed unit of work.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWork{db: db}
}

// WithTransaction commits when fn returns nil and rolls back everything otherwise.
func (u *unitOfWork) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
}
