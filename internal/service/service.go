package service

import (
	"errors"

	"github.com/atelier-nord/portfolio-backend/internal/config"
	"github.com/atelier-nord/portfolio-backend/internal/db"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("resource not found")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth    AuthService
	Project ProjectService
	Bio     BioService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config *config.Config
	Repos  *repository.Repositories
	Cache  *db.RedisDB // optional, nil when Redis is not configured
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth:    NewAuthService(deps.Config),
		Project: NewProjectService(deps.Repos.ProjectRepo, deps.Cache),
		Bio:     NewBioService(deps.Repos.BioRepo, deps.Cache),
	}
}
