package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

// MockJobApplicationRepository is a mock implementation of JobApplicationRepository.
type MockJobApplicationRepository struct {
	mock.Mock
}

func (m *MockJobApplicationRepository) Create(ctx context.Context, app *model.JobApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*model.JobApplication, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) List(ctx context.Context, ownerID uuid.UUID, filter repository.ListFilter) ([]model.JobApplication, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.JobApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobApplicationRepository) Update(ctx context.Context, app *model.JobApplication, fields map[string]any) error {
	args := m.Called(ctx, app, fields)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) Delete(ctx context.Context, app *model.JobApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryRepository is a mock implementation of HistoryRepository.
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) RecordCreated(ctx context.Context, appID, actorID uuid.UUID, at time.Time) error {
	args := m.Called(ctx, appID, actorID, at)
	return args.Error(0)
}

func (m *MockHistoryRepository) RecordStatusChanged(ctx context.Context, appID, actorID uuid.UUID, from, to model.Status, at time.Time) error {
	args := m.Called(ctx, appID, actorID, from, to, at)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByApplication(ctx context.Context, appID uuid.UUID) ([]model.JobApplicationHistory, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobApplicationHistory), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockUnitOfWork runs the callback against the mocked repositories, like a
// transaction that commits when the callback succeeds.
type MockUnitOfWork struct {
	mock.Mock
	repos repository.Repositories
}

func (m *MockUnitOfWork) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.repos)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
