package dto

import projectdomain "revdev-backend/internal/project/domain"

type ProjectRequest struct {
	Name         string   `json:"name" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ProjectURL   string   `json:"project_url"`
	Technologies []string `json:"technologies"`
	LogoURL      string   `json:"logo_url"`
	Images       []string `json:"images"`
}

type ProjectResult struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *projectdomain.Project `json:"data,omitempty"`
}

type ProjectListResult struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    []*projectdomain.Project `json:"data"`
}
