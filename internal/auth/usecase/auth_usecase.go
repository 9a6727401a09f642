package usecase

import (
	"errors"
	"log"
	"time"

	authdomain "revdev-backend/internal/auth/domain"
	authdto "revdev-backend/internal/auth/dto"
	"revdev-backend/internal/auth/repository"
	"revdev-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// demoCredential is a demonstration account usable only while the database
// is unconfigured. Once a real store is wired in, this table is unreachable.
type demoCredential struct {
	Email    string
	Password string
	Role     string
	Name     string
}

var demoCredentials = []demoCredential{
	{Email: "contacto@revdev.mx", Password: "admin123", Role: authdomain.RoleAdmin, Name: "Administrador RevDev"},
	{Email: "cliente@example.com", Password: "cliente123", Role: authdomain.RoleClient, Name: "Cliente Demo"},
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase. userRepo may be nil
// in demo mode.
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) SignIn(req *authdto.SignInRequest) (*authdto.SessionResponse, error) {
	if req.Email == "" || req.Password == "" {
		return &authdto.SessionResponse{
			Success: false,
			Message: "Email y contraseña son requeridos",
		}, nil
	}

	log.Printf("[DEBUG] Sign in attempt for: %s", req.Email)

	if !u.config.IsDatabaseConfigured() {
		return u.signInDemo(req)
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return &authdto.SessionResponse{
			Success: false,
			Message: "Credenciales inválidas",
		}, nil
	}

	if err := u.userRepo.TouchLastSignIn(user.ID); err != nil {
		log.Printf("[WARN] Could not stamp last_sign_in_at for %s: %v", user.ID, err)
	}

	identity := &authdomain.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	token, err := u.generateSessionToken(identity)
	if err != nil {
		return nil, err
	}

	return &authdto.SessionResponse{
		Success: true,
		Message: "Sesión iniciada exitosamente",
		Token:   token,
		User:    identity,
	}, nil
}

func (u *authUsecase) signInDemo(req *authdto.SignInRequest) (*authdto.SessionResponse, error) {
	for _, cred := range demoCredentials {
		if cred.Email != req.Email || cred.Password != req.Password {
			continue
		}

		log.Printf("[DEBUG] Demo login successful for: %s", req.Email)

		identity := &authdomain.Identity{
			ID:    "demo-" + cred.Role,
			Email: cred.Email,
			Name:  cred.Name,
			Role:  cred.Role,
		}

		token, err := u.generateSessionToken(identity)
		if err != nil {
			return nil, err
		}

		return &authdto.SessionResponse{
			Success: true,
			Message: "Sesión iniciada exitosamente (modo demo)",
			Token:   token,
			User:    identity,
		}, nil
	}

	return &authdto.SessionResponse{
		Success: false,
		Message: "Credenciales inválidas. Usa: contacto@revdev.mx / admin123 o cliente@example.com / cliente123",
	}, nil
}

func (u *authUsecase) SignUp(req *authdto.SignUpRequest) (*authdto.SessionResponse, error) {
	if req.Email == "" || req.Password == "" {
		return &authdto.SessionResponse{
			Success: false,
			Message: "Email y contraseña son requeridos",
		}, nil
	}

	if !u.config.IsDatabaseConfigured() {
		return &authdto.SessionResponse{
			Success: true,
			Message: "Cuenta creada exitosamente (modo demo). Puedes iniciar sesión con las credenciales de demo.",
		}, nil
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return &authdto.SessionResponse{
			Success: false,
			Message: "El usuario ya está registrado",
		}, nil
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     name,
		Role:     authdomain.RoleClient,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return &authdto.SessionResponse{
		Success: true,
		Message: "Cuenta creada exitosamente",
	}, nil
}

// generateSessionToken signs the full identity snapshot into one HS256
// token. The auth-user cookie mirrors the same snapshot for the UI, but the
// server only ever trusts what comes out of ValidateToken.
func (u *authUsecase) generateSessionToken(identity *authdomain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": identity.ID,
		"email":   identity.Email,
		"name":    identity.Name,
		"role":    identity.Role,
		"exp":     time.Now().Add(u.config.SessionExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &authdomain.Identity{
		ID:    userID,
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

// IsAdmin is the single admin predicate consumed by every mutating
// endpoint. The canonical admin is identified by email; the role claim is
// honored because it only ever comes out of a verified session token.
func (u *authUsecase) IsAdmin(identity *authdomain.Identity) bool {
	if identity == nil {
		return false
	}
	return identity.Email == u.config.AdminEmail || identity.Role == authdomain.RoleAdmin
}

func (u *authUsecase) SessionExpirySeconds() int {
	return int(u.config.SessionExpiry.Seconds())
}
