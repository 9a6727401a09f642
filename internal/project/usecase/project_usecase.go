package usecase

import (
	"errors"
	"log"

	authdomain "revdev-backend/internal/auth/domain"
	authusecase "revdev-backend/internal/auth/usecase"
	projectdomain "revdev-backend/internal/project/domain"
	projectdto "revdev-backend/internal/project/dto"
	"revdev-backend/internal/project/repository"
	"revdev-backend/pkg/config"

	"gorm.io/gorm"
)

const dbUnavailableMessage = "Base de datos no configurada. Algunas funciones pueden no estar disponibles."

// projectUsecase implements ProjectUsecase interface
type projectUsecase struct {
	repo repository.ProjectRepository
	auth authusecase.AuthUsecase
	cfg  *config.Config
}

// NewProjectUsecase creates a new instance of projectUsecase
func NewProjectUsecase(repo repository.ProjectRepository, auth authusecase.AuthUsecase, cfg *config.Config) ProjectUsecase {
	return &projectUsecase{
		repo: repo,
		auth: auth,
		cfg:  cfg,
	}
}

func (u *projectUsecase) List() (*projectdto.ProjectListResult, error) {
	projects, err := u.repo.List()
	if err != nil {
		return nil, err
	}

	message := "Proyectos obtenidos exitosamente"
	if !u.cfg.IsDatabaseConfigured() {
		message = "Proyectos de demostración (base de datos no configurada)"
	}

	if projects == nil {
		projects = []*projectdomain.Project{}
	}

	return &projectdto.ProjectListResult{
		Success: true,
		Message: message,
		Data:    projects,
	}, nil
}

func (u *projectUsecase) GetByID(id string) (*projectdto.ProjectResult, error) {
	project, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if project == nil {
		return &projectdto.ProjectResult{
			Success: false,
			Message: "Proyecto no encontrado",
		}, nil
	}

	return &projectdto.ProjectResult{
		Success: true,
		Message: "Proyecto obtenido exitosamente",
		Data:    project,
	}, nil
}

func (u *projectUsecase) Create(identity *authdomain.Identity, req *projectdto.ProjectRequest) (*projectdto.ProjectResult, error) {
	if !u.cfg.IsDatabaseConfigured() {
		return &projectdto.ProjectResult{Success: false, Message: dbUnavailableMessage}, nil
	}

	if !u.auth.IsAdmin(identity) {
		return &projectdto.ProjectResult{
			Success: false,
			Message: "No tienes permisos para crear proyectos. Solo " + u.cfg.AdminEmail + " puede crear proyectos.",
		}, nil
	}

	project := &projectdomain.Project{
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		ProjectURL:   req.ProjectURL,
		Technologies: req.Technologies,
		LogoURL:      req.LogoURL,
		Images:       req.Images,
		CreatedBy:    identity.ID,
	}

	if err := u.repo.Create(project); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] createProject - Success: %s by %s", project.ID, identity.ID)

	return &projectdto.ProjectResult{
		Success: true,
		Message: "Proyecto creado exitosamente",
		Data:    project,
	}, nil
}

func (u *projectUsecase) Update(identity *authdomain.Identity, id string, req *projectdto.ProjectRequest) (*projectdto.ProjectResult, error) {
	if !u.cfg.IsDatabaseConfigured() {
		return &projectdto.ProjectResult{Success: false, Message: dbUnavailableMessage}, nil
	}

	if !u.auth.IsAdmin(identity) {
		return &projectdto.ProjectResult{
			Success: false,
			Message: "No tienes permisos para actualizar proyectos. Solo " + u.cfg.AdminEmail + " puede actualizar proyectos.",
		}, nil
	}

	project := &projectdomain.Project{
		ID:           id,
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		ProjectURL:   req.ProjectURL,
		Technologies: req.Technologies,
		LogoURL:      req.LogoURL,
		Images:       req.Images,
	}

	if err := u.repo.Update(project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &projectdto.ProjectResult{
				Success: false,
				Message: "No se encontró el proyecto para actualizar.",
			}, nil
		}
		return nil, err
	}

	updated, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	return &projectdto.ProjectResult{
		Success: true,
		Message: "Proyecto actualizado exitosamente",
		Data:    updated,
	}, nil
}

func (u *projectUsecase) Delete(identity *authdomain.Identity, id string) (*projectdto.ProjectResult, error) {
	if !u.cfg.IsDatabaseConfigured() {
		return &projectdto.ProjectResult{Success: false, Message: dbUnavailableMessage}, nil
	}

	if !u.auth.IsAdmin(identity) {
		return &projectdto.ProjectResult{
			Success: false,
			Message: "No tienes permisos para eliminar proyectos.",
		}, nil
	}

	if err := u.repo.Delete(id); err != nil {
		return nil, err
	}

	return &projectdto.ProjectResult{
		Success: true,
		Message: "Proyecto eliminado exitosamente",
	}, nil
}
