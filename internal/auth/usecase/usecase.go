package usecase

import (
	authdomain "revdev-backend/internal/auth/domain"
	authdto "revdev-backend/internal/auth/dto"
)

// AuthUsecase resolves sessions and centralizes the admin predicate.
// Validation and authentication failures come back inside the
// SessionResponse; the error return is reserved for backend failures.
type AuthUsecase interface {
	SignIn(req *authdto.SignInRequest) (*authdto.SessionResponse, error)
	SignUp(req *authdto.SignUpRequest) (*authdto.SessionResponse, error)
	ValidateToken(token string) (*authdomain.Identity, error)
	IsAdmin(identity *authdomain.Identity) bool
	SessionExpirySeconds() int
}
