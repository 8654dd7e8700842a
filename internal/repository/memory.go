package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory repositories with the same contract as the Mongo ones, including
// id validation and the list cap. They back the test suite and let the API
// run locally without a MongoDB instance.

type memoryProjectRepository struct {
	mu        sync.RWMutex
	projects  []*Project
	listLimit int
}

func NewMemoryProjectRepository(listLimit int) ProjectRepository {
	return &memoryProjectRepository{listLimit: listLimit}
}

func (r *memoryProjectRepository) FindAll(_ context.Context) ([]*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Project{}
	for _, p := range r.projects {
		if len(out) >= r.listLimit {
			break
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryProjectRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.projects)), nil
}

func (r *memoryProjectRepository) Create(_ context.Context, project *Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	project.ID = bson.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Images == nil {
		project.Images = []string{}
	}

	clone := *project
	r.projects = append(r.projects, &clone)
	return nil
}

func (r *memoryProjectRepository) Replace(_ context.Context, id string, project *Project) (*Project, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID != objectID {
			continue
		}
		p.Title = project.Title
		p.Description = project.Description
		p.Year = project.Year
		p.Client = project.Client
		p.Location = project.Location
		p.Images = append([]string{}, project.Images...)
		p.PlanView = project.PlanView
		p.HasPlanView = project.HasPlanView
		p.UpdatedAt = time.Now().UTC()

		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (r *memoryProjectRepository) Delete(_ context.Context, id string) (bool, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.projects {
		if p.ID == objectID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memoryBioRepository struct {
	mu  sync.RWMutex
	bio *PortfolioBio
}

func NewMemoryBioRepository() BioRepository {
	return &memoryBioRepository{}
}

func (r *memoryBioRepository) Get(_ context.Context) (*PortfolioBio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.bio == nil {
		return defaultBio(), nil
	}
	clone := *r.bio
	return &clone, nil
}

func (r *memoryBioRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.bio == nil {
		return 0, nil
	}
	return 1, nil
}

func (r *memoryBioRepository) Upsert(_ context.Context, bioText string, bioEnabled bool) (*PortfolioBio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bio = &PortfolioBio{
		ID:         BioDocumentID,
		BioText:    bioText,
		BioEnabled: bioEnabled,
		UpdatedAt:  time.Now().UTC(),
	}
	clone := *r.bio
	return &clone, nil
}

// NewMemoryRepositories wires the in-memory variants into a Repositories set.
func NewMemoryRepositories(projectListLimit int) *Repositories {
	return &Repositories{
		ProjectRepo: NewMemoryProjectRepository(projectListLimit),
		BioRepo:     NewMemoryBioRepository(),
	}
}
