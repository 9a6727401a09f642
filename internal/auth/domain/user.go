package domain

import "time"

// Role values as stored on the user record and in session tokens.
const (
	RoleAdmin  = "admin"
	RoleClient = "cliente"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Password     string     `json:"-"` // Never return password in JSON
	Name         string     `json:"name"`
	Role         string     `json:"role" gorm:"default:cliente"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// Identity is the session snapshot mirrored into the auth-user cookie and
// carried inside the signed session token. Role here is only trusted when
// it comes out of a verified token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
