package repository

import (
	"errors"
	"time"

	projectdomain "revdev-backend/internal/project/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormProjectRepository implements ProjectRepository using GORM.
// Updates go through serviceDB, which may be an elevated-privilege
// connection when SERVICE_DATABASE_URL is configured; the admin check in
// the usecase is then the only authorization boundary on that path.
type gormProjectRepository struct {
	db        *gorm.DB
	serviceDB *gorm.DB
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository.
func NewGormProjectRepository(db, serviceDB *gorm.DB) ProjectRepository {
	if serviceDB == nil {
		serviceDB = db
	}
	return &gormProjectRepository{db: db, serviceDB: serviceDB}
}

func (r *gormProjectRepository) List() ([]*projectdomain.Project, error) {
	var projects []*projectdomain.Project
	err := r.db.Order("year DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepository) FindByID(id string) (*projectdomain.Project, error) {
	var project projectdomain.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) Create(project *projectdomain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	return r.db.Create(project).Error
}

func (r *gormProjectRepository) Update(project *projectdomain.Project) error {
	project.UpdatedAt = time.Now()
	result := r.serviceDB.Model(&projectdomain.Project{}).Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":         project.Name,
			"year":         project.Year,
			"description":  project.Description,
			"project_url":  project.ProjectURL,
			"technologies": project.Technologies,
			"logo_url":     project.LogoURL,
			"images":       project.Images,
			"updated_at":   project.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormProjectRepository) Delete(id string) error {
	return r.db.Delete(&projectdomain.Project{}, "id = ?", id).Error
}
