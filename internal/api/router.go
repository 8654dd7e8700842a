// internal/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/api/handlers"
	"github.com/atelier-nord/portfolio-backend/internal/api/middleware"
	"github.com/atelier-nord/portfolio-backend/internal/config"
	"github.com/atelier-nord/portfolio-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the full route table. The admin group runs behind the
// bearer-token middleware, so the auth check always precedes store access.
func NewRouter(cfg *config.Config, h *handlers.Handlers, authService service.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Public routes (no auth required)
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Architectural Portfolio API"})
		})
		api.GET("/projects", h.Project.List)
		api.GET("/portfolio-bio", h.Bio.Get)
		api.POST("/auth/login", h.Auth.Login)

		// Protected routes (require auth middleware)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			protected.GET("/auth/verify", h.Auth.Verify)

			admin := protected.Group("/admin")
			{
				admin.POST("/projects", h.Project.Create)
				admin.PUT("/projects/:id", h.Project.Update)
				admin.DELETE("/projects/:id", h.Project.Delete)
				admin.PUT("/portfolio-bio", h.Bio.Update)
			}
		}
	}

	return r
}
