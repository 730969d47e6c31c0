package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"jobtracker/internal/auth"
	"jobtracker/internal/config"
	"jobtracker/internal/db"
	"jobtracker/internal/logger"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
	"jobtracker/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.Init(cfg.LogLevel)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	mode := strings.ToLower(strings.TrimSpace(cfg.Seed.Mode))
	if mode != "personal" && cfg.IsProduction() {
		return errors.New("refusing to run demo seed with APP_ENV=production")
	}

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	log.Info("database migrations completed")

	uow := repository.NewUnitOfWork(gormDB)
	if mode == "personal" {
		return seedPersonalUser(ctx, uow, cfg.Personal, log)
	}
	return seedDemoUsers(ctx, uow, demoUsers, log)
}

// seedDemoUsers replaces the applications of every demo user. Each user is
// handled in its own transaction.
func seedDemoUsers(ctx context.Context, uow repository.UnitOfWork, users []seedUser, log *slog.Logger) error {
	for _, su := range users {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			return err
		}

		var removed int64
		err = uow.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
			user, err := repos.Users.UpsertByEmail(ctx, &model.User{
				Email:        service.NormalizeEmail(su.Email),
				PasswordHash: hash,
				Role:         su.Role,
			})
			if err != nil {
				return err
			}

			removed, err = repos.Applications.DeleteByOwner(ctx, user.ID)
			if err != nil {
				return err
			}

			for i, sa := range su.Applications {
				app, err := sa.toModel(user.ID, i)
				if err != nil {
					return err
				}
				if err := repos.Applications.Create(ctx, app); err != nil {
					return err
				}
				if err := repos.History.RecordCreated(ctx, app.ID, user.ID, app.CreatedAt); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", su.Email, err)
		}

		log.Info("seeded demo user",
			slog.String("email", su.Email),
			slog.String("role", string(su.Role)),
			slog.Int("applications", len(su.Applications)),
			slog.Int64("replaced", removed))
	}
	return nil
}

// seedPersonalUser only ensures the account exists. Applications are left alone.
func seedPersonalUser(ctx context.Context, uow repository.UnitOfWork, personal config.Personal, log *slog.Logger) error {
	email := service.NormalizeEmail(personal.Email)
	if email == "" || personal.Password == "" {
		return errors.New("SEED_MODE=personal requires PERSONAL_EMAIL and PERSONAL_PASSWORD")
	}
	hash, err := auth.HashPassword(personal.Password)
	if err != nil {
		return err
	}

	var user *model.User
	err = uow.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		user, err = repos.Users.UpsertByEmail(ctx, &model.User{
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("seed personal user: %w", err)
	}

	log.Info("personal user ensured", slog.String("email", user.Email), slog.String("user_id", user.ID.String()))
	return nil
}

// seedDate anchors a calendar date at noon UTC.
func seedDate(date string) (time.Time, error) {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("seed date %q: %w", date, err)
	}
	return day.Add(12 * time.Hour), nil
}
