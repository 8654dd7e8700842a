package handlers

import (
	"net/http"

	"github.com/atelier-nord/portfolio-backend/internal/models"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
	"github.com/atelier-nord/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

// List - All portfolio projects for the public view
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	response := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}

	c.JSON(http.StatusOK, response)
}

// Create - Create a new project
// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &repository.Project{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Client:      req.Client,
		Location:    req.Location,
		Images:      req.Images,
		PlanView:    req.PlanView,
		HasPlanView: req.HasPlanView,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Update - Full replace of a project's editable fields
// PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, &repository.Project{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Client:      req.Client,
		Location:    req.Location,
		Images:      req.Images,
		PlanView:    req.PlanView,
		HasPlanView: req.HasPlanView,
	})
	if err != nil {
		switch err {
		case service.ErrInvalidID:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

// Delete - Remove a project
// DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case service.ErrInvalidID:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
