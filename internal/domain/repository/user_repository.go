package repository

import "github.com/sena-adso/catalogo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByEmailOrUsername resuelve el login: cualquiera de los dos identifica al usuario.
	GetByEmailOrUsername(email, username string) (*entity.User, error)
	Update(user *entity.User) error
	List(includeInactive bool) ([]*entity.User, error)
	Delete(id string) error
	Count() (int64, error)
}
