package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/domain"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// UserUseCase reglas de visibilidad y mutación de usuarios según el rol del
// llamador:
//   - auxiliar solo ve y modifica su propio registro, y no puede cambiar rol
//   - coordinador no puede ver administradores
//   - un admin solo puede ser eliminado/desactivado por otro admin
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve usuarios visibles para el llamador. Un auxiliar recibe a lo
// sumo su propio registro; los demás roles ven todos los que pase el filtro
// de activos.
func (uc *UserUseCase) List(callerRole, callerID string, includeInactive bool) ([]dto.UserResponse, error) {
	if callerRole == entity.RoleAuxiliar {
		user, err := uc.users.GetByID(callerID)
		if err != nil {
			return nil, err
		}
		if user == nil || (!user.Active && !includeInactive) {
			return []dto.UserResponse{}, nil
		}
		return []dto.UserResponse{*toUserResponse(user)}, nil
	}
	list, err := uc.users.List(includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID aplica los chequeos en orden fijo y cortocircuitando: primero
// existencia del objetivo, luego auxiliar-solo-se-ve-a-sí-mismo, luego
// coordinador-no-ve-admins.
func (uc *UserUseCase) GetByID(callerRole, callerID, targetID string) (*dto.UserResponse, error) {
	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if callerRole == entity.RoleAuxiliar && callerID != targetID {
		return nil, domain.ErrForbidden
	}
	if callerRole == entity.RoleCoordinador && target.Role == entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(target), nil
}

// Update fusiona los campos presentes. Un auxiliar solo puede actualizarse a
// sí mismo y nunca cambiar su rol. El password se re-hashea únicamente si
// viene presente y es distinto del actual.
func (uc *UserUseCase) Update(callerRole, callerID, targetID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if callerRole == entity.RoleAuxiliar && callerID != targetID {
		return nil, domain.ErrForbidden
	}
	if callerRole == entity.RoleAuxiliar && in.Role != nil {
		return nil, domain.ErrForbidden
	}
	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, domain.ErrValidation
		}
		if username != target.Username {
			existing, err := uc.users.GetByUsername(username)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != targetID {
				return nil, domain.ErrUsernameTaken
			}
		}
		target.Username = username
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return nil, domain.ErrValidation
		}
		if email != target.Email {
			existing, err := uc.users.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != targetID {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		target.Email = email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrValidation
		}
		target.Role = *in.Role
	}
	if in.Active != nil {
		target.Active = *in.Active
	}
	if in.Password != nil {
		if len(*in.Password) < 10 {
			return nil, domain.ErrValidation
		}
		// Solo re-hashear si realmente cambió
		if bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(*in.Password)) != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			target.PasswordHash = string(hash)
		}
	}
	target.UpdatedAt = time.Now()
	if err := uc.users.Update(target); err != nil {
		return nil, err
	}
	return toUserResponse(target), nil
}

// Delete elimina (hard) o desactiva (soft) un usuario. Un admin solo puede
// ser eliminado por otro admin: decide el rol del llamador, no el id.
func (uc *UserUseCase) Delete(callerRole, targetID string, hard bool) (*dto.UserDeleteResponse, error) {
	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if target.Role == entity.RoleAdmin && callerRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if hard {
		if err := uc.users.Delete(targetID); err != nil {
			return nil, err
		}
		return &dto.UserDeleteResponse{Hard: true, User: *toUserResponse(target)}, nil
	}

	target.Active = false
	target.UpdatedAt = time.Now()
	if err := uc.users.Update(target); err != nil {
		return nil, err
	}
	return &dto.UserDeleteResponse{Hard: false, User: *toUserResponse(target)}, nil
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
