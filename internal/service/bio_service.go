package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/db"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
)

// ============================================
// Portfolio Bio Service
// ============================================

const (
	bioCacheKey = "portfolio-bio"
	bioCacheTTL = 5 * time.Minute
)

type BioService interface {
	Get(ctx context.Context) (*repository.PortfolioBio, error)
	Update(ctx context.Context, bioText string, bioEnabled bool) (*repository.PortfolioBio, error)
}

type bioService struct {
	bioRepo repository.BioRepository
	cache   *db.RedisDB
}

func NewBioService(bioRepo repository.BioRepository, cache *db.RedisDB) BioService {
	return &bioService{
		bioRepo: bioRepo,
		cache:   cache,
	}
}

func (s *bioService) Get(ctx context.Context) (*repository.PortfolioBio, error) {
	if s.cache != nil {
		cached := &repository.PortfolioBio{}
		if err := s.cache.GetCache(ctx, bioCacheKey, cached); err == nil {
			return cached, nil
		}
	}

	bio, err := s.bioRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bio: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCache(ctx, bioCacheKey, bio, bioCacheTTL); err != nil {
			log.Printf("[Cache] Failed to store bio: %v", err)
		}
	}
	return bio, nil
}

func (s *bioService) Update(ctx context.Context, bioText string, bioEnabled bool) (*repository.PortfolioBio, error) {
	bio, err := s.bioRepo.Upsert(ctx, bioText, bioEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to update bio: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCache(ctx, bioCacheKey); err != nil {
			log.Printf("[Cache] Failed to invalidate bio: %v", err)
		}
	}
	return bio, nil
}
