// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ============================================
// Models / Entities
// ============================================

type Project struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Year        string        `bson:"year" json:"year"`
	Client      string        `bson:"client" json:"client"`
	Location    string        `bson:"location" json:"location"`
	Images      []string      `bson:"images" json:"images"`
	PlanView    string        `bson:"plan_view" json:"plan_view"`
	HasPlanView bool          `bson:"has_plan_view" json:"has_plan_view"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// PortfolioBio is a singleton: every write targets BioDocumentID, so the
// collection never holds more than one document.
type PortfolioBio struct {
	ID         string    `bson:"_id" json:"id"`
	BioText    string    `bson:"bio_text" json:"bio_text"`
	BioEnabled bool      `bson:"bio_enabled" json:"bio_enabled"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BioDocumentID is the fixed key of the bio singleton.
const BioDocumentID = "portfolio-bio"

// ErrInvalidID is returned before any store round-trip when an identifier is
// not a syntactically valid ObjectID.
var ErrInvalidID = errors.New("invalid document id")

// ============================================
// Repository Interfaces
// ============================================

type ProjectRepository interface {
	// FindAll returns projects in the store's natural scan order, capped at
	// the configured list limit.
	FindAll(ctx context.Context) ([]*Project, error)
	Count(ctx context.Context) (int64, error)
	// Create assigns the ID and both timestamps on the passed project.
	Create(ctx context.Context, project *Project) error
	// Replace swaps all editable fields and refreshes updated_at, keeping
	// the original created_at. Returns (nil, nil) when id matches nothing.
	Replace(ctx context.Context, id string, project *Project) (*Project, error)
	// Delete reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type BioRepository interface {
	// Get returns the singleton, or an in-memory default (not persisted)
	// when none exists yet.
	Get(ctx context.Context) (*PortfolioBio, error)
	Count(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, bioText string, bioEnabled bool) (*PortfolioBio, error)
}

// Repositories groups all repositories for injection
type Repositories struct {
	ProjectRepo ProjectRepository
	BioRepo     BioRepository
}

// NewRepositories creates all Mongo-backed repositories
func NewRepositories(database *mongo.Database, projectListLimit int) *Repositories {
	return &Repositories{
		ProjectRepo: NewProjectRepository(database, projectListLimit),
		BioRepo:     NewBioRepository(database),
	}
}

func defaultBio() *PortfolioBio {
	return &PortfolioBio{
		ID:         BioDocumentID,
		BioText:    "",
		BioEnabled: false,
		UpdatedAt:  time.Now().UTC(),
	}
}
