package repository

import authdomain "revdev-backend/internal/auth/domain"

// UserAdminRepository is the administrative view over user accounts.
// Injected so the demo mode and tests can run against in-memory state.
type UserAdminRepository interface {
	List() ([]*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
}
