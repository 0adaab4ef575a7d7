package auth

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/domain"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
	"github.com/sena-adso/catalogo-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Signup crea un usuario: valida username/email/password, hashea con bcrypt,
// persiste y emite un token. El rol por defecto es auxiliar.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < 10 {
		return nil, domain.ErrValidation
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAuxiliar
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrValidation
	}
	if existing, err := uc.users.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := uc.users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Signin busca por email o username, verifica el password con bcrypt y emite
// un JWT. Usuario inexistente devuelve ErrUserNotFound; password incorrecto,
// ErrUnauthorized; cuenta desactivada, ErrForbidden.
func (uc *AuthUseCase) Signin(in dto.SigninRequest) (*dto.AuthResponse, error) {
	if in.Email == "" && in.Username == "" {
		return nil, domain.ErrValidation
	}
	if in.Password == "" {
		return nil, domain.ErrValidation
	}
	user, err := uc.users.GetByEmailOrUsername(strings.ToLower(strings.TrimSpace(in.Email)), strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
