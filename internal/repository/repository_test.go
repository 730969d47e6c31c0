package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "jobtracker/internal/errors"
	"jobtracker/internal/model"
	"jobtracker/internal/testutil"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newOwner(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user, err := NewUserRepository(db).UpsertByEmail(context.Background(), &model.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         model.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func newApplication(ownerID uuid.UUID, company, position string, status model.Status, appDate, createdAt time.Time) *model.JobApplication {
	return &model.JobApplication{
		UserID:          ownerID,
		Company:         company,
		Position:        position,
		Source:          "LinkedIn",
		ApplicationDate: appDate,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestUserRepository_UpsertByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.UpsertByEmail(ctx, &model.User{Email: "demo@jobtracker.com", PasswordHash: "old", Role: model.RoleDemo})
	require.NoError(t, err)

	second, err := repo.UpsertByEmail(ctx, &model.User{Email: "demo@jobtracker.com", PasswordHash: "new", Role: model.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "new", second.PasswordHash)
	assert.Equal(t, model.RoleUser, second.Role)

	byID, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo@jobtracker.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@jobtracker.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJobApplicationRepository_FindOwned(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()

	alice := newOwner(t, db, "alice@example.com")
	bob := newOwner(t, db, "bob@example.com")

	app := newApplication(alice.ID, "Acme", "Backend Engineer", model.StatusSent, baseTime, baseTime)
	require.NoError(t, repo.Create(ctx, app))
	require.NotEqual(t, uuid.Nil, app.ID)

	tests := []struct {
		name    string
		id      uuid.UUID
		ownerID uuid.UUID
		wantErr error
	}{
		{name: "owner reads own row", id: app.ID, ownerID: alice.ID},
		{name: "foreign owner gets not found", id: app.ID, ownerID: bob.ID, wantErr: apperrors.ErrNotFound},
		{name: "missing id gets not found", id: uuid.New(), ownerID: alice.ID, wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindOwned(ctx, tt.id, tt.ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Acme", got.Company)
			assert.Equal(t, model.StatusSent, got.Status)
		})
	}
}

func TestJobApplicationRepository_ListPaginationAndOrder(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()

	alice := newOwner(t, db, "alice@example.com")
	bob := newOwner(t, db, "bob@example.com")

	var created []uuid.UUID
	for i := 0; i < 5; i++ {
		app := newApplication(alice.ID, fmt.Sprintf("Company %d", i), "Engineer", model.StatusSent,
			baseTime.AddDate(0, 0, -i), baseTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, app))
		created = append(created, app.ID)
	}
	require.NoError(t, repo.Create(ctx, newApplication(bob.ID, "Other", "Engineer", model.StatusSent, baseTime, baseTime)))

	seen := map[uuid.UUID]bool{}
	var ordered []uuid.UUID
	for offset := 0; offset < 6; offset += 2 {
		items, total, err := repo.List(ctx, alice.ID, ListFilter{Offset: offset, Limit: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		for _, item := range items {
			assert.False(t, seen[item.ID], "duplicate id across pages")
			seen[item.ID] = true
			ordered = append(ordered, item.ID)
		}
	}
	require.Len(t, ordered, 5)
	// Newest first.
	for i := range ordered {
		assert.Equal(t, created[len(created)-1-i], ordered[i])
	}

	items, total, err := repo.List(ctx, alice.ID, ListFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, alice.ID, ListFilter{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, items)
}

func TestJobApplicationRepository_ListTieBreakers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()
	alice := newOwner(t, db, "alice@example.com")

	older := newApplication(alice.ID, "Older date", "Engineer", model.StatusSent, baseTime.AddDate(0, 0, -3), baseTime)
	newer := newApplication(alice.ID, "Newer date", "Engineer", model.StatusSent, baseTime, baseTime)
	first := newApplication(alice.ID, "Same keys A", "Engineer", model.StatusSent, baseTime.AddDate(0, 0, -5), baseTime)
	second := newApplication(alice.ID, "Same keys B", "Engineer", model.StatusSent, baseTime.AddDate(0, 0, -5), baseTime)
	for _, app := range []*model.JobApplication{older, newer, first, second} {
		require.NoError(t, repo.Create(ctx, app))
	}

	items, _, err := repo.List(ctx, alice.ID, ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)
	// Identical created_at and application_date: later insert first.
	assert.Equal(t, second.ID, items[2].ID)
	assert.Equal(t, first.ID, items[3].ID)
}

func TestJobApplicationRepository_ListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()
	alice := newOwner(t, db, "alice@example.com")

	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	fixtures := []*model.JobApplication{
		newApplication(alice.ID, "Mercado Libre", "Backend Engineer", model.StatusInterview, day(5), baseTime),
		newApplication(alice.ID, "Globant", "Frontend Developer", model.StatusSent, day(10), baseTime.Add(time.Minute)),
		newApplication(alice.ID, "Nubank", "Platform Engineer", model.StatusRejected, day(15), baseTime.Add(2*time.Minute)),
		newApplication(alice.ID, "100% Remote Co", "Data_Engineer", model.StatusSent, day(20), baseTime.Add(3*time.Minute)),
	}
	for _, app := range fixtures {
		require.NoError(t, repo.Create(ctx, app))
	}

	sent := model.StatusSent
	from, to := day(10), day(15)

	tests := []struct {
		name      string
		filter    ListFilter
		companies []string
	}{
		{
			name:      "status",
			filter:    ListFilter{Status: &sent},
			companies: []string{"100% Remote Co", "Globant"},
		},
		{
			name:      "inclusive date range",
			filter:    ListFilter{From: &from, To: &to},
			companies: []string{"Nubank", "Globant"},
		},
		{
			name:      "query matches company case-insensitively",
			filter:    ListFilter{Query: "mercado"},
			companies: []string{"Mercado Libre"},
		},
		{
			name:      "query matches position",
			filter:    ListFilter{Query: "ENGINEER"},
			companies: []string{"100% Remote Co", "Nubank", "Mercado Libre"},
		},
		{
			name:      "percent is literal",
			filter:    ListFilter{Query: "100%"},
			companies: []string{"100% Remote Co"},
		},
		{
			name:      "underscore is literal",
			filter:    ListFilter{Query: "a_e"},
			companies: []string{"100% Remote Co"},
		},
		{
			name:      "combined filters",
			filter:    ListFilter{Status: &sent, Query: "globant", From: &from},
			companies: []string{"Globant"},
		},
		{
			name:   "no match",
			filter: ListFilter{Query: "hooli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Limit = 20
			items, total, err := repo.List(ctx, alice.ID, tt.filter)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.companies), total)

			var got []string
			for _, item := range items {
				got = append(got, item.Company)
			}
			assert.Equal(t, tt.companies, got)
		})
	}
}

func TestJobApplicationRepository_UpdateAndDeleteAreOwnerScoped(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	history := NewHistoryRepository(db)
	ctx := context.Background()

	alice := newOwner(t, db, "alice@example.com")
	bob := newOwner(t, db, "bob@example.com")

	app := newApplication(alice.ID, "Acme", "Engineer", model.StatusSent, baseTime, baseTime)
	require.NoError(t, repo.Create(ctx, app))
	require.NoError(t, history.RecordCreated(ctx, app.ID, alice.ID, baseTime))

	foreign := *app
	foreign.UserID = bob.ID
	require.NoError(t, repo.Update(ctx, &foreign, map[string]any{"company": "Hijacked"}))
	assert.ErrorIs(t, repo.Delete(ctx, &foreign), apperrors.ErrNotFound)

	stored, err := repo.FindOwned(ctx, app.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Company)

	require.NoError(t, repo.Update(ctx, app, map[string]any{"company": "Acme Corp", "status": model.StatusInterview}))
	stored, err = repo.FindOwned(ctx, app.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stored.Company)
	assert.Equal(t, model.StatusInterview, stored.Status)

	require.NoError(t, repo.Delete(ctx, app))
	_, err = repo.FindOwned(ctx, app.ID, alice.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	events, err := history.ListByApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Len(t, events, 1, "history survives deletion")
}

func TestJobApplicationRepository_DeleteByOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobApplicationRepository(db)
	ctx := context.Background()

	alice := newOwner(t, db, "alice@example.com")
	bob := newOwner(t, db, "bob@example.com")
	require.NoError(t, repo.Create(ctx, newApplication(alice.ID, "A", "Engineer", model.StatusSent, baseTime, baseTime)))
	require.NoError(t, repo.Create(ctx, newApplication(alice.ID, "B", "Engineer", model.StatusSent, baseTime, baseTime)))
	require.NoError(t, repo.Create(ctx, newApplication(bob.ID, "C", "Engineer", model.StatusSent, baseTime, baseTime)))

	removed, err := repo.DeleteByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	_, total, err := repo.List(ctx, bob.ID, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestHistoryRepository_OrderAndMeta(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	appID, actor := uuid.New(), uuid.New()
	require.NoError(t, repo.RecordStatusChanged(ctx, appID, actor, model.StatusSent, model.StatusInterview, baseTime.Add(time.Hour)))
	require.NoError(t, repo.RecordCreated(ctx, appID, actor, baseTime))
	require.NoError(t, repo.RecordStatusChanged(ctx, appID, actor, model.StatusInterview, model.StatusRejected, baseTime.Add(2*time.Hour)))
	require.NoError(t, repo.RecordCreated(ctx, uuid.New(), actor, baseTime))

	events, err := repo.ListByApplication(ctx, appID)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, model.HistoryCreated, events[0].Type)
	assert.JSONEq(t, `{}`, string(events[0].Meta))

	change, ok := events[1].StatusChange()
	require.True(t, ok)
	assert.Equal(t, model.StatusSent, change.From)
	assert.Equal(t, model.StatusInterview, change.To)

	change, ok = events[2].StatusChange()
	require.True(t, ok)
	assert.Equal(t, model.StatusRejected, change.To)
	assert.Equal(t, actor, events[2].ActorUserID)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()
	alice := newOwner(t, db, "alice@example.com")

	boom := errors.New("boom")
	app := newApplication(alice.ID, "Acme", "Engineer", model.StatusSent, baseTime, baseTime)
	err := uow.WithTransaction(ctx, func(ctx context.Context, repos Repositories) error {
		if err := repos.Applications.Create(ctx, app); err != nil {
			return err
		}
		if err := repos.History.RecordCreated(ctx, app.ID, alice.ID, baseTime); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, total, err := NewJobApplicationRepository(db).List(ctx, alice.ID, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)

	events, err := NewHistoryRepository(db).ListByApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUnitOfWork_HistoryFailureDiscardsApplication(t *testing.T) {
	db := testutil.NewDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()
	alice := newOwner(t, db, "alice@example.com")

	historyDown := errors.New("history table unavailable")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_history", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "job_application_histories" {
			_ = tx.AddError(historyDown)
		}
	}))

	err := uow.WithTransaction(ctx, func(ctx context.Context, repos Repositories) error {
		app := newApplication(alice.ID, "Acme", "Engineer", model.StatusSent, baseTime, baseTime)
		if err := repos.Applications.Create(ctx, app); err != nil {
			return err
		}
		return repos.History.RecordCreated(ctx, app.ID, alice.ID, baseTime)
	})
	require.ErrorIs(t, err, historyDown)

	_, total, err := NewJobApplicationRepository(db).List(ctx, alice.ID, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total, "application must not commit without its CREATED event")
}
