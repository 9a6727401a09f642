package domain

import (
	"time"

	"github.com/lib/pq"
)

// Project is a portfolio entry shown in the public carousel and managed
// from the admin dashboard. Mutations replace the full attribute set.
type Project struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Year         int            `json:"year" gorm:"index"`
	Description  string         `json:"description"`
	ProjectURL   string         `json:"project_url,omitempty"`
	Technologies pq.StringArray `json:"technologies" gorm:"type:text[]"`
	LogoURL      string         `json:"logo_url,omitempty"`
	Images       pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	CreatedBy    string         `json:"created_by"`
}
