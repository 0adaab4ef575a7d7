package repository

import "github.com/sena-adso/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List por defecto excluye inactivas; ordena por fecha de creación descendente.
	List(includeInactive bool) ([]*entity.Category, error)
	Delete(id string) error
	Count() (int64, error)
}
