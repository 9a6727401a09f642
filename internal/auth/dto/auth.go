package dto

import authdomain "revdev-backend/internal/auth/domain"

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SignUpRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

type SessionResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Token   string               `json:"token,omitempty"`
	User    *authdomain.Identity `json:"user,omitempty"`
}
