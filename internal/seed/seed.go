// internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/atelier-nord/portfolio-backend/internal/repository"
)

// SampleProjects returns the showcase catalog inserted into an empty store.
func SampleProjects() []*repository.Project {
	return []*repository.Project{
		{
			Title:       "Modern Residential Complex",
			Description: "A contemporary residential development featuring sustainable design principles and innovative use of natural light. The project incorporates locally sourced materials and energy-efficient systems throughout.",
			Year:        "2023",
			Client:      "Green Living Development",
			Location:    "Seattle, Washington",
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=2075&q=80",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-4.0.3&auto=format&fit=crop&w=2053&q=80",
			},
			PlanView:    "https://images.unsplash.com/photo-1503387762-592deb58ef4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=2031&q=80",
			HasPlanView: true,
		},
		{
			Title:       "Cultural Arts Center",
			Description: "A dynamic cultural hub designed to foster community engagement through art and performance. The building features flexible spaces that can adapt to various cultural events and exhibitions.",
			Year:        "2022",
			Client:      "City Arts Foundation",
			Location:    "Portland, Oregon",
			Images: []string{
				"https://images.unsplash.com/photo-1487958449943-2429e8be8625?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
				"https://images.unsplash.com/photo-1511818966892-d7d671e672a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=2121&q=80",
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
			PlanView:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=2071&q=80",
			HasPlanView: true,
		},
		{
			Title:       "Sustainable Office Tower",
			Description: "A 20-story office building that achieves LEED Platinum certification through innovative sustainable design strategies including rainwater harvesting, solar panels, and green roof systems.",
			Year:        "2023",
			Client:      "EcoTech Solutions",
			Location:    "San Francisco, California",
			Images: []string{
				"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
			PlanView:    "",
			HasPlanView: false,
		},
		{
			Title:       "Waterfront Pavilion",
			Description: "An elegant pavilion structure designed for waterfront events and ceremonies. The design emphasizes transparency and connection with the natural waterfront environment.",
			Year:        "2021",
			Client:      "",
			Location:    "Vancouver, Canada",
			Images: []string{
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?ixlib=rb-4.0.3&auto=format&fit=crop&w=2070&q=80",
			},
			PlanView:    "",
			HasPlanView: false,
		},
	}
}

// Run seeds each collection only when it is empty, so repeated startups never
// duplicate data. It must finish before the router starts serving.
func Run(ctx context.Context, repos *repository.Repositories) error {
	projectCount, err := repos.ProjectRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if projectCount == 0 {
		samples := SampleProjects()
		for _, p := range samples {
			if err := repos.ProjectRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("failed to seed project %q: %w", p.Title, err)
			}
		}
		log.Printf("[Seed] ✅ Seeded database with %d projects", len(samples))
	} else {
		log.Printf("[Seed] ℹ️  Database already has %d projects", projectCount)
	}

	bioCount, err := repos.BioRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count bio documents: %w", err)
	}
	if bioCount == 0 {
		if _, err := repos.BioRepo.Upsert(ctx, "", false); err != nil {
			return fmt.Errorf("failed to seed bio: %w", err)
		}
		log.Println("[Seed] ✅ Initialized portfolio bio settings")
	} else {
		log.Println("[Seed] ℹ️  Portfolio bio already configured")
	}

	return nil
}
