package repository

import (
	"errors"
	"sort"
	"time"

	projectdomain "revdev-backend/internal/project/domain"
)

// ErrDemoReadOnly is returned for mutations while running without a
// configured database.
var ErrDemoReadOnly = errors.New("demo repository is read-only")

// demoProjectRepository serves the fixed demonstration dataset shown when
// the database is unconfigured.
type demoProjectRepository struct {
	projects []*projectdomain.Project
}

// NewDemoProjectRepository returns a repository seeded with exactly the two
// demonstration projects.
func NewDemoProjectRepository() ProjectRepository {
	now := time.Now()
	return &demoProjectRepository{
		projects: []*projectdomain.Project{
			{
				ID:          "demo-1",
				Name:        "Proyecto Demo 1",
				Year:        2024,
				Description: "Este es un proyecto de demostración para mostrar la funcionalidad del carousel cuando la base de datos no está configurada.",
				ProjectURL:  "https://ejemplo.com",
				Technologies: []string{
					"React", "Next.js", "TypeScript", "Tailwind CSS",
				},
				LogoURL:   "/placeholder.svg?height=80&width=200&text=Demo+Logo+1",
				Images:    []string{"/placeholder.svg?height=300&width=400&text=Demo+Image+1"},
				CreatedAt: now,
				UpdatedAt: now,
				CreatedBy: "demo-user",
			},
			{
				ID:          "demo-2",
				Name:        "Proyecto Demo 2",
				Year:        2023,
				Description: "Segundo proyecto de demostración con diferentes tecnologías para mostrar la variedad de nuestro trabajo.",
				ProjectURL:  "",
				Technologies: []string{
					"Vue.js", "Firebase", "JavaScript", "Bootstrap",
				},
				LogoURL:   "/placeholder.svg?height=80&width=200&text=Demo+Logo+2",
				Images:    []string{"/placeholder.svg?height=300&width=400&text=Demo+Image+2"},
				CreatedAt: now,
				UpdatedAt: now,
				CreatedBy: "demo-user",
			},
		},
	}
}

func (r *demoProjectRepository) List() ([]*projectdomain.Project, error) {
	out := make([]*projectdomain.Project, len(r.projects))
	copy(out, r.projects)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *demoProjectRepository) FindByID(id string) (*projectdomain.Project, error) {
	for _, project := range r.projects {
		if project.ID == id {
			return project, nil
		}
	}
	return nil, nil
}

func (r *demoProjectRepository) Create(*projectdomain.Project) error {
	return ErrDemoReadOnly
}

func (r *demoProjectRepository) Update(*projectdomain.Project) error {
	return ErrDemoReadOnly
}

func (r *demoProjectRepository) Delete(string) error {
	return ErrDemoReadOnly
}
