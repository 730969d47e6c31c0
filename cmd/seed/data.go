package main

import (
	"time"

	"github.com/google/uuid"

	"jobtracker/internal/model"
)

type seedApplication struct {
	Company         string
	Position        string
	Source          string
	ApplicationDate string
	Status          model.Status
	Notes           string
	JobURL          string
}

type seedUser struct {
	Email        string
	Password     string
	Role         model.Role
	Applications []seedApplication
}

// toModel builds the row for the index-th application of a user. created_at
// is staggered by index seconds so listing order is deterministic.
func (sa seedApplication) toModel(ownerID uuid.UUID, index int) (*model.JobApplication, error) {
	applied, err := seedDate(sa.ApplicationDate)
	if err != nil {
		return nil, err
	}
	createdAt := applied.Add(time.Duration(index) * time.Second)
	return &model.JobApplication{
		UserID:          ownerID,
		Company:         sa.Company,
		Position:        sa.Position,
		Source:          sa.Source,
		ApplicationDate: applied,
		Status:          sa.Status,
		Notes:           optional(sa.Notes),
		JobURL:          optional(sa.JobURL),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var demoUsers = []seedUser{
	{
		Email:    "demo@jobtracker.com",
		Password: "Demo1234!",
		Role:     model.RoleDemo,
		Applications: []seedApplication{
			{Company: "Acme Corp", Position: "Frontend Developer", Source: "LinkedIn", ApplicationDate: "2025-01-18", Status: model.StatusInProgress,
				Notes: "Contacto inicial de recruiter, esperando agenda de entrevista tecnica.", JobURL: "https://www.linkedin.com/jobs/view/frontend-developer-acme"},
			{Company: "Mural", Position: "Senior React Engineer", Source: "GetOnBoard", ApplicationDate: "2025-01-16", Status: model.StatusInterview,
				Notes: "Agendada tecnica en 2 pasos. Preparar ejemplos de UI con SSR.", JobURL: "https://www.getonbrd.com/jobs/frontend-mural"},
			{Company: "Mercado Libre", Position: "Backend Node.js", Source: "LinkedIn", ApplicationDate: "2025-01-14", Status: model.StatusSent,
				Notes: "Adjunte portfolio y repositorios de microservicios."},
			{Company: "Rappi", Position: "Fullstack TypeScript", Source: "Referral", ApplicationDate: "2025-01-10", Status: model.StatusInProgress,
				Notes: "Contactar a Lucia (recruiter) si no responden en 72h.", JobURL: "https://rappi.com/careers/fullstack"},
			{Company: "Nubank", Position: "Product Engineer", Source: "GetOnBoard", ApplicationDate: "2025-01-06", Status: model.StatusInterview,
				Notes: "Casos de estudio enviados. Esperando feedback."},
			{Company: "Uala", Position: "QA Automation", Source: "LinkedIn", ApplicationDate: "2024-12-28", Status: model.StatusNoResponse,
				Notes: "Aplicacion enviada con CV actualizado y cover letter."},
			{Company: "PedidosYa", Position: "Engineering Manager", Source: "Referral", ApplicationDate: "2024-12-22", Status: model.StatusInProgress,
				Notes: "Solicitar feedback sobre challenge de liderazgo."},
			{Company: "Globant", Position: "UX Researcher", Source: "LinkedIn", ApplicationDate: "2024-12-18", Status: model.StatusRejected,
				Notes: "Feedback: buscan mayor seniority en discovery cuantitativo."},
			{Company: "LaLiga Tech", Position: "Data Analyst", Source: "Indeed", ApplicationDate: "2024-12-10", Status: model.StatusNoResponse,
				JobURL: "https://www.indeed.com/viewjob-laligatech-data-analyst"},
			{Company: "Ripio", Position: "Platform Engineer", Source: "Referral", ApplicationDate: "2024-12-02", Status: model.StatusInProgress,
				Notes: "Se envio repo con IaC. Revisar follow-up en 1 semana."},
			{Company: "Despegar", Position: "Frontend SSR", Source: "GetOnBoard", ApplicationDate: "2024-11-20", Status: model.StatusRejected,
				Notes: "Feedback: reintentar en 6 meses con foco en performance."},
			{Company: "Bitso", Position: "Tech Lead", Source: "LinkedIn", ApplicationDate: "2024-11-12", Status: model.StatusSent,
				Notes: "Contactar a ex colega para referral."},
		},
	},
	{
		Email:    "admin@jobtracker.com",
		Password: "Admin1234!",
		Role:     model.RoleUser,
		Applications: []seedApplication{
			{Company: "Acme Ventures", Position: "Head of Engineering", Source: "Headhunter", ApplicationDate: "2025-01-15", Status: model.StatusInterview,
				Notes: "Pitch presentado. Falta ronda con VP."},
			{Company: "Globex", Position: "Backend Go", Source: "LinkedIn", ApplicationDate: "2025-01-08", Status: model.StatusSent,
				JobURL: "https://www.linkedin.com/jobs/view/backend-go"},
			{Company: "Stark Industries", Position: "Security Engineer", Source: "Referral", ApplicationDate: "2024-12-29", Status: model.StatusInProgress,
				Notes: "Esperando NDA para challenge de seguridad."},
			{Company: "Wayne Enterprises", Position: "Data Lead", Source: "GetOnBoard", ApplicationDate: "2024-12-18", Status: model.StatusNoResponse},
			{Company: "Hooli", Position: "Site Reliability Engineer", Source: "LinkedIn", ApplicationDate: "2024-12-05", Status: model.StatusRejected,
				Notes: "Se ofrecio feedback escrito."},
			{Company: "Initech", Position: "Fullstack Developer", Source: "Indeed", ApplicationDate: "2024-11-25", Status: model.StatusInProgress,
				Notes: "Esperando revision de code challenge."},
		},
	},
}
