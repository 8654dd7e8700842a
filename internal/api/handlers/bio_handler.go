package handlers

import (
	"net/http"

	"github.com/atelier-nord/portfolio-backend/internal/models"
	"github.com/atelier-nord/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Portfolio Bio Handler
// ============================================

type BioHandler struct {
	bioService service.BioService
}

// Get - The bio singleton for the public view. bio_text is always returned;
// bio_enabled tells the front end whether to render it.
// GET /api/portfolio-bio
func (h *BioHandler) Get(c *gin.Context) {
	bio, err := h.bioService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bio"})
		return
	}

	c.JSON(http.StatusOK, toBioResponse(bio))
}

// Update - Upsert the bio singleton
// PUT /api/admin/portfolio-bio
func (h *BioHandler) Update(c *gin.Context) {
	var req models.UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	bio, err := h.bioService.Update(c.Request.Context(), req.BioText, req.BioEnabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bio"})
		return
	}

	c.JSON(http.StatusOK, toBioResponse(bio))
}
