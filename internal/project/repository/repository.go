package repository

import projectdomain "revdev-backend/internal/project/domain"

// ProjectRepository abstracts the projects table. List must return entries
// ordered by year descending, ties broken by creation time descending.
type ProjectRepository interface {
	List() ([]*projectdomain.Project, error)
	FindByID(id string) (*projectdomain.Project, error)
	Create(project *projectdomain.Project) error
	Update(project *projectdomain.Project) error
	Delete(id string) error
}
