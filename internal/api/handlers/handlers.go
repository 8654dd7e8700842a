package handlers

import (
	"github.com/atelier-nord/portfolio-backend/internal/models"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
	"github.com/atelier-nord/portfolio-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth    *AuthHandler
	Project *ProjectHandler
	Bio     *BioHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    &AuthHandler{authService: services.Auth},
		Project: &ProjectHandler{projectService: services.Project},
		Bio:     &BioHandler{bioService: services.Bio},
	}
}

// ============================================
// Response Mappers
// ============================================

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Year:        p.Year,
		Client:      p.Client,
		Location:    p.Location,
		Images:      safeStringSlice(p.Images),
		PlanView:    p.PlanView,
		HasPlanView: p.HasPlanView,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toBioResponse(b *repository.PortfolioBio) models.BioResponse {
	return models.BioResponse{
		ID:         b.ID,
		BioText:    b.BioText,
		BioEnabled: b.BioEnabled,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Helper to ensure nil slices become empty slices
func safeStringSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
