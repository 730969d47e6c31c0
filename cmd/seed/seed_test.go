package main

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/internal/auth"
	"jobtracker/internal/config"
	"jobtracker/internal/logger"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
	"jobtracker/internal/testutil"
)

func TestSeedDemoUsersIsRepeatable(t *testing.T) {
	gdb := testutil.NewDB(t)
	uow := repository.NewUnitOfWork(gdb)
	ctx := context.Background()

	for run := 0; run < 2; run++ {
		require.NoError(t, seedDemoUsers(ctx, uow, demoUsers, logger.Discard()))
	}

	repos := repository.NewRepositories(gdb)
	for _, su := range demoUsers {
		user, err := repos.Users.FindByEmail(ctx, su.Email)
		require.NoError(t, err)
		assert.Equal(t, su.Role, user.Role)
		ok, err := auth.CheckPassword(user.PasswordHash, su.Password)
		require.NoError(t, err)
		assert.True(t, ok)

		apps, total, err := repos.Applications.List(ctx, user.ID, repository.ListFilter{Limit: 100})
		require.NoError(t, err)
		assert.EqualValues(t, len(su.Applications), total)

		for _, app := range apps {
			events, err := repos.History.ListByApplication(ctx, app.ID)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, model.HistoryCreated, events[0].Type)
			assert.Equal(t, user.ID, events[0].ActorUserID)
			assert.True(t, app.CreatedAt.Equal(events[0].CreatedAt))
		}
	}
}

func TestSeedApplicationToModel(t *testing.T) {
	sa := seedApplication{Company: "Globex", Position: "Backend Go", Source: "LinkedIn", ApplicationDate: "2025-01-08", Status: model.StatusSent}

	app, err := sa.toModel(uuid.New(), 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC), app.ApplicationDate)
	assert.Equal(t, time.Date(2025, 1, 8, 12, 0, 3, 0, time.UTC), app.CreatedAt)
	assert.Nil(t, app.Notes)
	assert.Nil(t, app.JobURL)

	sa.ApplicationDate = "08/01/2025"
	_, err = sa.toModel(uuid.New(), 0)
	assert.Error(t, err)
}

func TestSeedPersonalUser(t *testing.T) {
	gdb := testutil.NewDB(t)
	uow := repository.NewUnitOfWork(gdb)
	ctx := context.Background()

	err := seedPersonalUser(ctx, uow, config.Personal{Email: "me@example.com"}, logger.Discard())
	assert.Error(t, err)

	err = seedPersonalUser(ctx, uow, config.Personal{Email: " Me@Example.com ", Password: "Personal1!"}, logger.Discard())
	require.NoError(t, err)

	user, err := repository.NewUserRepository(gdb).FindByEmail(ctx, "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestRunRefusesDemoSeedInProduction(t *testing.T) {
	cfg := &config.Config{AppEnv: "production", Seed: config.Seed{Mode: "demo"}}
	err := run(context.Background(), cfg, logger.Discard())
	assert.ErrorContains(t, err, "production")
}
