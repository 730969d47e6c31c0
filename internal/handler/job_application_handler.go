package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"jobtracker/internal/model"
	"jobtracker/internal/service"
)

// JobApplicationHandler handles job application endpoints.
type JobApplicationHandler struct {
	service service.JobApplicationService
}

// NewJobApplicationHandler creates a new job application handler.
func NewJobApplicationHandler(svc service.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{service: svc}
}

// CreateJobApplicationRequest represents a new job application.
// Status accepts the API tokens (EN_PROCESO) as well as loose spellings ("en proceso").
type CreateJobApplicationRequest struct {
	Company         string                `json:"company" validate:"required,max=200"`
	Position        string                `json:"position" validate:"required,max=200"`
	Source          string                `json:"source" validate:"required,max=100"`
	ApplicationDate string                `json:"applicationDate" validate:"required"`
	Status          string                `json:"status" validate:"required"`
	Notes           *string               `json:"notes" validate:"omitempty,max=5000"`
	JobURL          *string               `json:"jobUrl" validate:"omitempty,url,max=2048"`
	SalaryMin       *decimal.Decimal      `json:"salaryMin" swaggertype:"string"`
	SalaryMax       *decimal.Decimal      `json:"salaryMax" swaggertype:"string"`
	SalaryCurrency  *model.SalaryCurrency `json:"salaryCurrency" validate:"omitempty,salary_currency" swaggertype:"string"`
	SalaryPeriod    *model.SalaryPeriod   `json:"salaryPeriod" validate:"omitempty,salary_period" swaggertype:"string"`
	SalaryType      *model.SalaryType     `json:"salaryType" validate:"omitempty,salary_type" swaggertype:"string"`
}

// UpdateJobApplicationRequest is a partial update; omitted fields are left untouched.
type UpdateJobApplicationRequest struct {
	Company         *string               `json:"company" validate:"omitempty,max=200"`
	Position        *string               `json:"position" validate:"omitempty,max=200"`
	Source          *string               `json:"source" validate:"omitempty,max=100"`
	ApplicationDate *string               `json:"applicationDate"`
	Status          *string               `json:"status"`
	Notes           *string               `json:"notes" validate:"omitempty,max=5000"`
	JobURL          *string               `json:"jobUrl" validate:"omitempty,url,max=2048"`
	SalaryMin       *decimal.Decimal      `json:"salaryMin" swaggertype:"string"`
	SalaryMax       *decimal.Decimal      `json:"salaryMax" swaggertype:"string"`
	SalaryCurrency  *model.SalaryCurrency `json:"salaryCurrency" validate:"omitempty,salary_currency" swaggertype:"string"`
	SalaryPeriod    *model.SalaryPeriod   `json:"salaryPeriod" validate:"omitempty,salary_period" swaggertype:"string"`
	SalaryType      *model.SalaryType     `json:"salaryType" validate:"omitempty,salary_type" swaggertype:"string"`
}

// List godoc
// @Summary List job applications
// @Description Returns the caller's applications, newest first.
// @Tags job-applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status token"
// @Param fromDate query string false "Earliest application date (inclusive)"
// @Param toDate query string false "Latest application date (inclusive)"
// @Param q query string false "Case-insensitive company/position search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.JobApplicationPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /job-applications [get]
func (h *JobApplicationHandler) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}

	page, err := h.service.List(c.Request().Context(), ownerID, service.ListJobApplicationsInput{
		Status:   c.QueryParam("status"),
		FromDate: c.QueryParam("fromDate"),
		ToDate:   c.QueryParam("toDate"),
		Query:    c.QueryParam("q"),
		Page:     c.QueryParam("page"),
		Limit:    c.QueryParam("limit"),
	})
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Statuses godoc
// @Summary List statuses
// @Description Status tokens with labels in the language picked from Accept-Language.
// @Tags job-applications
// @Produce json
// @Security BearerAuth
// @Param Accept-Language header string false "Preferred label language"
// @Success 200 {array} service.StatusOption
// @Router /job-applications/statuses [get]
func (h *JobApplicationHandler) Statuses(c echo.Context) error {
	lang := model.LabelLanguage(c.Request().Header.Get("Accept-Language"))
	return c.JSON(http.StatusOK, h.service.Statuses(lang))
}

// Get godoc
// @Summary Get a job application
// @Tags job-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job application ID"
// @Success 200 {object} model.JobApplication
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{id} [get]
func (h *JobApplicationHandler) Get(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	id, err := pathID(c)
	if err != nil {
		return ToHTTPError(err)
	}

	app, err := h.service.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// History godoc
// @Summary Job application history
// @Description Audit events of an application, oldest first.
// @Tags job-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job application ID"
// @Success 200 {array} service.HistoryEvent
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{id}/history [get]
func (h *JobApplicationHandler) History(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	id, err := pathID(c)
	if err != nil {
		return ToHTTPError(err)
	}

	events, err := h.service.History(c.Request().Context(), ownerID, id)
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create a job application
// @Tags job-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobApplicationRequest true "Job application"
// @Success 201 {object} model.JobApplication
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /job-applications [post]
func (h *JobApplicationHandler) Create(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	var req CreateJobApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.service.Create(c.Request().Context(), ownerID, service.CreateJobApplicationInput{
		Company:         req.Company,
		Position:        req.Position,
		Source:          req.Source,
		ApplicationDate: req.ApplicationDate,
		Status:          req.Status,
		Notes:           req.Notes,
		JobURL:          req.JobURL,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		SalaryPeriod:    req.SalaryPeriod,
		SalaryType:      req.SalaryType,
	})
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, app)
}

// Update godoc
// @Summary Update a job application
// @Description Partial update. A status change is recorded in the history.
// @Tags job-applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job application ID"
// @Param request body UpdateJobApplicationRequest true "Fields to change"
// @Success 200 {object} model.JobApplication
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{id} [patch]
func (h *JobApplicationHandler) Update(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	id, err := pathID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	var req UpdateJobApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.service.Update(c.Request().Context(), ownerID, id, service.UpdateJobApplicationInput{
		Company:         req.Company,
		Position:        req.Position,
		Source:          req.Source,
		ApplicationDate: req.ApplicationDate,
		Status:          req.Status,
		Notes:           req.Notes,
		JobURL:          req.JobURL,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		SalaryPeriod:    req.SalaryPeriod,
		SalaryType:      req.SalaryType,
	})
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// Delete godoc
// @Summary Delete a job application
// @Tags job-applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job application ID"
// @Success 200 {object} model.JobApplication
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /job-applications/{id} [delete]
func (h *JobApplicationHandler) Delete(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	id, err := pathID(c)
	if err != nil {
		return ToHTTPError(err)
	}

	app, err := h.service.Delete(c.Request().Context(), ownerID, id)
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, app)
}
