package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/db"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
)

// ============================================
// Project Service
// ============================================

const (
	projectsCacheKey = "projects"
	projectsCacheTTL = 5 * time.Minute
)

type ProjectService interface {
	List(ctx context.Context) ([]*repository.Project, error)
	Create(ctx context.Context, project *repository.Project) (*repository.Project, error)
	Update(ctx context.Context, id string, project *repository.Project) (*repository.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	cache       *db.RedisDB
}

func NewProjectService(projectRepo repository.ProjectRepository, cache *db.RedisDB) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		cache:       cache,
	}
}

func (s *projectService) List(ctx context.Context) ([]*repository.Project, error) {
	if s.cache != nil {
		var cached []*repository.Project
		if err := s.cache.GetCache(ctx, projectsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, projectsCacheKey, projects, projectsCacheTTL); err != nil {
			log.Printf("[Cache] Failed to store project list: %v", err)
		}
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, project *repository.Project) (*repository.Project, error) {
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	s.invalidateCache(ctx)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, project *repository.Project) (*repository.Project, error) {
	updated, err := s.projectRepo.Replace(ctx, id, project)
	if errors.Is(err, repository.ErrInvalidID) {
		return nil, ErrInvalidID
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrInvalidID) {
		return ErrInvalidID
	}
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *projectService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, projectsCacheKey); err != nil {
		log.Printf("[Cache] Failed to invalidate project list: %v", err)
	}
}
