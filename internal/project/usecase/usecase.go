package usecase

import (
	authdomain "revdev-backend/internal/auth/domain"
	projectdto "revdev-backend/internal/project/dto"
)

// ProjectUsecase implements the project CRUD operations. Listing and
// fetching are public; every mutation requires the admin predicate.
// Business-rule failures come back inside the result; the error return is
// reserved for backend failures.
type ProjectUsecase interface {
	List() (*projectdto.ProjectListResult, error)
	GetByID(id string) (*projectdto.ProjectResult, error)
	Create(identity *authdomain.Identity, req *projectdto.ProjectRequest) (*projectdto.ProjectResult, error)
	Update(identity *authdomain.Identity, id string, req *projectdto.ProjectRequest) (*projectdto.ProjectResult, error)
	Delete(identity *authdomain.Identity, id string) (*projectdto.ProjectResult, error)
}
