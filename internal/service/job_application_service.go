package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	apperrors "jobtracker/internal/errors"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

// CreateJobApplicationInput carries the fields of a new application.
// Status and ApplicationDate are raw user input and get normalized here.
type CreateJobApplicationInput struct {
	Company         string
	Position        string
	Source          string
	ApplicationDate string
	Status          string
	Notes           *string
	JobURL          *string
	SalaryMin       *decimal.Decimal
	SalaryMax       *decimal.Decimal
	SalaryCurrency  *model.SalaryCurrency
	SalaryPeriod    *model.SalaryPeriod
	SalaryType      *model.SalaryType
}

// UpdateJobApplicationInput is a partial update: nil fields are left untouched.
// An empty Notes or JobURL clears the stored value.
type UpdateJobApplicationInput struct {
	Company         *string
	Position        *string
	Source          *string
	ApplicationDate *string
	Status          *string
	Notes           *string
	JobURL          *string
	SalaryMin       *decimal.Decimal
	SalaryMax       *decimal.Decimal
	SalaryCurrency  *model.SalaryCurrency
	SalaryPeriod    *model.SalaryPeriod
	SalaryType      *model.SalaryType
}

// ListJobApplicationsInput holds raw listing query parameters.
type ListJobApplicationsInput struct {
	Status   string
	FromDate string
	ToDate   string
	Query    string
	Page     string
	Limit    string
}

// PageMeta describes where a page sits in the full result.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// JobApplicationPage is one page of a listing.
type JobApplicationPage struct {
	Items []model.JobApplication `json:"items"`
	Meta  PageMeta               `json:"meta"`
}

// HistoryMeta is the decoded payload of a history event. Both fields are
// empty for CREATED events.
type HistoryMeta struct {
	From *model.Status `json:"from,omitempty"`
	To   *model.Status `json:"to,omitempty"`
}

// HistoryEvent is the API view of a history row.
type HistoryEvent struct {
	ID               uuid.UUID         `json:"id"`
	JobApplicationID uuid.UUID         `json:"jobApplicationId"`
	Type             model.HistoryType `json:"type"`
	Meta             HistoryMeta       `json:"meta"`
	ActorUserID      uuid.UUID         `json:"actorUserId"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// StatusOption pairs a status token with its display label.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// JobApplicationService handles job application use cases for an authenticated owner.
type JobApplicationService interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateJobApplicationInput) (*model.JobApplication, error)
	List(ctx context.Context, ownerID uuid.UUID, in ListJobApplicationsInput) (*JobApplicationPage, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateJobApplicationInput) (*model.JobApplication, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error)
	History(ctx context.Context, ownerID, id uuid.UUID) ([]HistoryEvent, error)
	Statuses(lang language.Tag) []StatusOption
}

// Option customizes a service.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

type jobApplicationService struct {
	uow          repository.UnitOfWork
	applications repository.JobApplicationRepository
	history      repository.HistoryRepository
	clock        func() time.Time
	log          *slog.Logger
}

// NewJobApplicationService creates a new job application service.
func NewJobApplicationService(
	uow repository.UnitOfWork,
	applications repository.JobApplicationRepository,
	history repository.HistoryRepository,
	log *slog.Logger,
	opts ...Option,
) JobApplicationService {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &jobApplicationService{
		uow:          uow,
		applications: applications,
		history:      history,
		clock:        o.clock,
		log:          log,
	}
}

// Create validates input and stores the application with its CREATED event atomically.
func (s *jobApplicationService) Create(ctx context.Context, ownerID uuid.UUID, in CreateJobApplicationInput) (*model.JobApplication, error) {
	company, err := requiredText("company", in.Company)
	if err != nil {
		return nil, err
	}
	position, err := requiredText("position", in.Position)
	if err != nil {
		return nil, err
	}
	source, err := requiredText("source", in.Source)
	if err != nil {
		return nil, err
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}
	applicationDate, err := ParseDate("applicationDate", in.ApplicationDate)
	if err != nil {
		return nil, err
	}
	if err := validateSalary(in.SalaryMin, in.SalaryMax); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	app := &model.JobApplication{
		UserID:          ownerID,
		Company:         company,
		Position:        position,
		Source:          source,
		ApplicationDate: applicationDate,
		Status:          status,
		Notes:           optionalText(in.Notes),
		JobURL:          optionalText(in.JobURL),
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SalaryCurrency:  in.SalaryCurrency,
		SalaryPeriod:    in.SalaryPeriod,
		SalaryType:      in.SalaryType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.uow.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Applications.Create(ctx, app); err != nil {
			return err
		}
		return repos.History.RecordCreated(ctx, app.ID, ownerID, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job application created",
		slog.String("job_application_id", app.ID.String()),
		slog.String("user_id", ownerID.String()))
	return app, nil
}

// List returns a filtered page of the owner's applications.
func (s *jobApplicationService) List(ctx context.Context, ownerID uuid.UUID, in ListJobApplicationsInput) (*JobApplicationPage, error) {
	var filter repository.ListFilter

	if strings.TrimSpace(in.Status) != "" {
		status, err := normalizeStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if strings.TrimSpace(in.FromDate) != "" {
		from, err := ParseDate("fromDate", in.FromDate)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if strings.TrimSpace(in.ToDate) != "" {
		to, err := ParseDate("toDate", in.ToDate)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	filter.Query = strings.TrimSpace(in.Query)

	page, limit := NormalizePage(in.Page, in.Limit)
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	items, total, err := s.applications.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.JobApplication{}
	}

	return &JobApplicationPage{
		Items: items,
		Meta: PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: TotalPages(total, limit),
		},
	}, nil
}

// Get returns one application owned by ownerID.
func (s *jobApplicationService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error) {
	return s.applications.FindOwned(ctx, id, ownerID)
}

// Update applies a partial update. A STATUS_CHANGED event is written in the
// same transaction only when the normalized status differs from the stored one.
func (s *jobApplicationService) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateJobApplicationInput) (*model.JobApplication, error) {
	fields := map[string]any{}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{"company", in.Company},
		{"position", in.Position},
		{"source", in.Source},
	} {
		if f.value == nil {
			continue
		}
		text, err := requiredText(f.name, *f.value)
		if err != nil {
			return nil, err
		}
		fields[f.name] = text
	}

	var newStatus *model.Status
	if in.Status != nil {
		status, err := normalizeStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		newStatus = &status
		fields["status"] = status
	}
	if in.ApplicationDate != nil {
		applicationDate, err := ParseDate("applicationDate", *in.ApplicationDate)
		if err != nil {
			return nil, err
		}
		fields["application_date"] = applicationDate
	}
	if in.Notes != nil {
		fields["notes"] = optionalText(in.Notes)
	}
	if in.JobURL != nil {
		fields["job_url"] = optionalText(in.JobURL)
	}
	if in.SalaryMin != nil {
		fields["salary_min"] = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		fields["salary_max"] = *in.SalaryMax
	}
	if in.SalaryCurrency != nil {
		fields["salary_currency"] = *in.SalaryCurrency
	}
	if in.SalaryPeriod != nil {
		fields["salary_period"] = *in.SalaryPeriod
	}
	if in.SalaryType != nil {
		fields["salary_type"] = *in.SalaryType
	}
	// Checked again below against the stored values.
	if err := validateSalary(in.SalaryMin, in.SalaryMax); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	fields["updated_at"] = now

	var (
		updated  *model.JobApplication
		previous model.Status
		changed  bool
	)
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.Applications.FindOwned(ctx, id, ownerID)
		if err != nil {
			return err
		}

		salaryMin, salaryMax := current.SalaryMin, current.SalaryMax
		if in.SalaryMin != nil {
			salaryMin = in.SalaryMin
		}
		if in.SalaryMax != nil {
			salaryMax = in.SalaryMax
		}
		if err := validateSalary(salaryMin, salaryMax); err != nil {
			return err
		}

		if err := repos.Applications.Update(ctx, current, fields); err != nil {
			return err
		}

		previous = current.Status
		changed = newStatus != nil && *newStatus != current.Status
		if changed {
			if err := repos.History.RecordStatusChanged(ctx, current.ID, ownerID, current.Status, *newStatus, now); err != nil {
				return err
			}
		}

		updated, err = repos.Applications.FindOwned(ctx, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "job application status changed",
			slog.String("job_application_id", id.String()),
			slog.String("from", string(previous)),
			slog.String("to", string(*newStatus)))
	}
	return updated, nil
}

// Delete removes an owned application and returns it. History rows are kept.
func (s *jobApplicationService) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.JobApplication, error) {
	var removed *model.JobApplication
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.Applications.FindOwned(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if err := repos.Applications.Delete(ctx, current); err != nil {
			return err
		}
		removed = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job application deleted",
		slog.String("job_application_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return removed, nil
}

// History lists the audit trail of an owned application, oldest first.
func (s *jobApplicationService) History(ctx context.Context, ownerID, id uuid.UUID) ([]HistoryEvent, error) {
	app, err := s.applications.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.history.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	events := make([]HistoryEvent, 0, len(rows))
	for _, row := range rows {
		event := HistoryEvent{
			ID:               row.ID,
			JobApplicationID: row.JobApplicationID,
			Type:             row.Type,
			ActorUserID:      row.ActorUserID,
			CreatedAt:        row.CreatedAt,
		}
		if change, ok := row.StatusChange(); ok {
			event.Meta = HistoryMeta{From: &change.From, To: &change.To}
		}
		events = append(events, event)
	}
	return events, nil
}

// Statuses lists every status token with its label in lang.
func (s *jobApplicationService) Statuses(lang language.Tag) []StatusOption {
	out := make([]StatusOption, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		out = append(out, StatusOption{Value: status.APIToken(), Label: status.Label(lang)})
	}
	return out
}

func normalizeStatus(raw string) (model.Status, error) {
	status, ok := model.NormalizeStatus(raw)
	if !ok {
		if strings.TrimSpace(raw) == "" {
			return "", apperrors.NewValidationError("status", "is required")
		}
		return "", apperrors.NewValidationError("status", "invalid status %q", raw)
	}
	return status, nil
}

func requiredText(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", apperrors.NewValidationError(field, "is required")
	}
	return value, nil
}

// optionalText trims v and maps blank input to nil.
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateSalary(salaryMin, salaryMax *decimal.Decimal) error {
	if salaryMin != nil && salaryMin.IsNegative() {
		return apperrors.NewValidationError("salaryMin", "must not be negative")
	}
	if salaryMax != nil && salaryMax.IsNegative() {
		return apperrors.NewValidationError("salaryMax", "must not be negative")
	}
	if salaryMin != nil && salaryMax != nil && salaryMax.LessThan(*salaryMin) {
		return apperrors.NewValidationError("salaryMax",
			"must be greater than or equal to salaryMin (%s < %s)", salaryMax.String(), salaryMin.String())
	}
	return nil
}
