package dto

import authdomain "revdev-backend/internal/auth/domain"

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserStats struct {
	TotalUsers   int `json:"total_users"`
	TotalClients int `json:"total_clients"`
	TotalAdmins  int `json:"total_admins"`
}

type UserListResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Data    []*authdomain.User `json:"data"`
}

type UserStatsResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *UserStats `json:"data,omitempty"`
}

type UserActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
