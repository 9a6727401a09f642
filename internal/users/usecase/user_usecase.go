package usecase

import (
	"log"

	authdomain "revdev-backend/internal/auth/domain"
	authusecase "revdev-backend/internal/auth/usecase"
	usersdto "revdev-backend/internal/users/dto"
	"revdev-backend/internal/users/repository"
	"revdev-backend/pkg/config"
)

const notAuthorizedMessage = "No tienes permisos para realizar esta acción"

// UserUsecase covers the administrative user operations. Every operation
// is gated by the admin predicate.
type UserUsecase interface {
	List(identity *authdomain.Identity) (*usersdto.UserListResult, error)
	Stats(identity *authdomain.Identity) (*usersdto.UserStatsResult, error)
	UpdateRole(identity *authdomain.Identity, userID, role string) (*usersdto.UserActionResult, error)
	Delete(identity *authdomain.Identity, userID string) (*usersdto.UserActionResult, error)
}

type userUsecase struct {
	repo repository.UserAdminRepository
	auth authusecase.AuthUsecase
	cfg  *config.Config
}

func NewUserUsecase(repo repository.UserAdminRepository, auth authusecase.AuthUsecase, cfg *config.Config) UserUsecase {
	return &userUsecase{
		repo: repo,
		auth: auth,
		cfg:  cfg,
	}
}

func (u *userUsecase) List(identity *authdomain.Identity) (*usersdto.UserListResult, error) {
	if !u.auth.IsAdmin(identity) {
		return &usersdto.UserListResult{
			Success: false,
			Message: "No tienes permisos para ver esta información",
		}, nil
	}

	users, err := u.repo.List()
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []*authdomain.User{}
	}

	return &usersdto.UserListResult{Success: true, Data: users}, nil
}

func (u *userUsecase) Stats(identity *authdomain.Identity) (*usersdto.UserStatsResult, error) {
	if !u.auth.IsAdmin(identity) {
		return &usersdto.UserStatsResult{
			Success: false,
			Message: "No tienes permisos para ver esta información",
		}, nil
	}

	users, err := u.repo.List()
	if err != nil {
		return nil, err
	}

	stats := &usersdto.UserStats{TotalUsers: len(users)}
	for _, user := range users {
		switch user.Role {
		case authdomain.RoleAdmin:
			stats.TotalAdmins++
		case authdomain.RoleClient:
			stats.TotalClients++
		}
	}

	return &usersdto.UserStatsResult{Success: true, Data: stats}, nil
}

func (u *userUsecase) UpdateRole(identity *authdomain.Identity, userID, role string) (*usersdto.UserActionResult, error) {
	if userID == "" || role == "" {
		return &usersdto.UserActionResult{
			Success: false,
			Message: "ID de usuario y rol son requeridos",
		}, nil
	}

	if role != authdomain.RoleAdmin && role != authdomain.RoleClient {
		return &usersdto.UserActionResult{
			Success: false,
			Message: "Rol inválido. Debe ser 'admin' o 'cliente'",
		}, nil
	}

	if !u.auth.IsAdmin(identity) {
		return &usersdto.UserActionResult{Success: false, Message: notAuthorizedMessage}, nil
	}

	target, err := u.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &usersdto.UserActionResult{Success: false, Message: "Usuario no encontrado"}, nil
	}

	if err := u.repo.UpdateRole(userID, role); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] updateUserRole - Success for user: %s new role: %s", userID, role)

	return &usersdto.UserActionResult{
		Success: true,
		Message: "Rol actualizado a " + role + " exitosamente",
	}, nil
}

func (u *userUsecase) Delete(identity *authdomain.Identity, userID string) (*usersdto.UserActionResult, error) {
	if userID == "" {
		return &usersdto.UserActionResult{
			Success: false,
			Message: "ID de usuario requerido",
		}, nil
	}

	if !u.auth.IsAdmin(identity) {
		return &usersdto.UserActionResult{Success: false, Message: notAuthorizedMessage}, nil
	}

	if userID == identity.ID {
		return &usersdto.UserActionResult{
			Success: false,
			Message: "No puedes eliminar tu propia cuenta",
		}, nil
	}

	target, err := u.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return &usersdto.UserActionResult{Success: false, Message: "Usuario no encontrado"}, nil
	}

	if target.Email == u.cfg.AdminEmail {
		return &usersdto.UserActionResult{
			Success: false,
			Message: "No se puede eliminar el administrador principal",
		}, nil
	}

	if err := u.repo.Delete(userID); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] deleteUser - Success for user: %s by: %s", userID, identity.ID)

	return &usersdto.UserActionResult{
		Success: true,
		Message: "Usuario eliminado exitosamente",
	}, nil
}
