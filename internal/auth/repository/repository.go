package repository

import authdomain "revdev-backend/internal/auth/domain"

// UserRepository abstracts the users table so usecases can run against
// postgres or an injected test double.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	TouchLastSignIn(id string) error
}
