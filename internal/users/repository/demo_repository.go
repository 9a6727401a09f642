package repository

import (
	"sync"
	"time"

	authdomain "revdev-backend/internal/auth/domain"
)

// demoUserRepository simulates the user store in-process. State resets on
// restart; a mutex guards the slice against concurrent requests.
type demoUserRepository struct {
	mu    sync.RWMutex
	users []*authdomain.User
}

// NewDemoUserRepository returns the repository seeded with the fixed
// demonstration accounts.
func NewDemoUserRepository() UserAdminRepository {
	return &demoUserRepository{users: seedDemoUsers()}
}

func seedDemoUsers() []*authdomain.User {
	return []*authdomain.User{
		demoUser("demo-admin", "contacto@revdev.mx", "Administrador RevDev", authdomain.RoleAdmin,
			"2024-01-01T00:00:00Z", "2024-01-15T10:30:00Z"),
		demoUser("demo-client", "cliente@example.com", "Cliente Demo", authdomain.RoleClient,
			"2024-01-02T00:00:00Z", "2024-01-14T15:45:00Z"),
		demoUser("demo-user-1", "usuario1@example.com", "Usuario Uno", authdomain.RoleClient,
			"2024-01-03T00:00:00Z", "2024-01-13T09:15:00Z"),
		demoUser("demo-user-2", "usuario2@example.com", "Usuario Dos", authdomain.RoleClient,
			"2024-01-04T00:00:00Z", "2024-01-12T14:20:00Z"),
	}
}

func demoUser(id, email, name, role, createdAt, lastSignInAt string) *authdomain.User {
	created, _ := time.Parse(time.RFC3339, createdAt)
	lastSignIn, _ := time.Parse(time.RFC3339, lastSignInAt)
	return &authdomain.User{
		ID:           id,
		Email:        email,
		Name:         name,
		Role:         role,
		CreatedAt:    created,
		UpdatedAt:    created,
		LastSignInAt: &lastSignIn,
	}
}

func (r *demoUserRepository) List() ([]*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Value copies, so callers never hold pointers into the locked state
	out := make([]*authdomain.User, 0, len(r.users))
	for _, user := range r.users {
		u := *user
		out = append(out, &u)
	}
	return out, nil
}

func (r *demoUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *demoUserRepository) UpdateRole(id, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			user.Role = role
			user.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *demoUserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}
