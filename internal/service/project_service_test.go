package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/atelier-nord/portfolio-backend/internal/db"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// absentID is well-formed but matches nothing.
const absentID = "507f1f77bcf86cd799439011"

func newTestProjectService() ProjectService {
	return NewProjectService(repository.NewMemoryProjectRepository(100), nil)
}

func TestProjectCreate_AssignsIDAndTimestamps(t *testing.T) {
	s := newTestProjectService()
	ctx := context.Background()

	created, err := s.Create(ctx, &repository.Project{
		Title:    "Harbor House",
		Year:     "2024",
		Location: "Oslo, Norway",
		Images:   []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	projects, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, created.ID, projects[0].ID)
	assert.Equal(t, "Harbor House", projects[0].Title)
	assert.Equal(t, []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}, projects[0].Images)
}

func TestProjectCreate_UniqueIDs(t *testing.T) {
	s := newTestProjectService()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		p, err := s.Create(ctx, &repository.Project{Title: "P"})
		require.NoError(t, err)
		assert.False(t, seen[p.ID.Hex()])
		seen[p.ID.Hex()] = true
	}
}

func TestProjectUpdate_ReplacesFields(t *testing.T) {
	s := newTestProjectService()
	ctx := context.Background()

	created, err := s.Create(ctx, &repository.Project{
		Title:       "Old Title",
		Description: "old",
		PlanView:    "https://example.com/plan.png",
		HasPlanView: true,
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := s.Update(ctx, created.ID.Hex(), &repository.Project{
		Title:       "New Title",
		Description: "new",
		Year:        "2025",
		Images:      []string{"https://example.com/new.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, "2025", updated.Year)
	assert.Empty(t, updated.PlanView)
	assert.False(t, updated.HasPlanView)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestProjectUpdate_InvalidID(t *testing.T) {
	s := newTestProjectService()

	_, err := s.Update(context.Background(), "invalid_id_format", &repository.Project{Title: "X"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestProjectUpdate_NotFound(t *testing.T) {
	s := newTestProjectService()

	_, err := s.Update(context.Background(), absentID, &repository.Project{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectDelete(t *testing.T) {
	s := newTestProjectService()
	ctx := context.Background()

	created, err := s.Create(ctx, &repository.Project{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID.Hex()))

	projects, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	// Second delete of the same id
	assert.ErrorIs(t, s.Delete(ctx, created.ID.Hex()), ErrNotFound)
}

func TestProjectDelete_InvalidID(t *testing.T) {
	s := newTestProjectService()
	assert.ErrorIs(t, s.Delete(context.Background(), "invalid_id_format"), ErrInvalidID)
}

func TestProjectList_CacheInvalidatedOnWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := db.NewRedisDB("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	s := NewProjectService(repository.NewMemoryProjectRepository(100), cache)
	ctx := context.Background()

	first, err := s.Create(ctx, &repository.Project{Title: "Cached"})
	require.NoError(t, err)

	// Prime the cache, then serve from it.
	projects, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	projects, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, first.ID, projects[0].ID)

	// A write must drop the cached list.
	_, err = s.Create(ctx, &repository.Project{Title: "Fresh"})
	require.NoError(t, err)

	projects, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}
