package repository

import "github.com/sena-adso/catalogo-api/internal/domain/entity"

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
// Los métodos de cascada devuelven filas afectadas para que el caso de uso
// pueda reportar conteos; sobre un conjunto vacío son no-op exitosos.
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	GetByName(name string) (*entity.Subcategory, error)
	// GetByIDAndCategory valida la relación producto→subcategoría→categoría:
	// la subcategoría debe existir Y pertenecer a esa categoría exacta.
	GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error)
	Update(subcategory *entity.Subcategory) error
	List(includeInactive bool) ([]*entity.Subcategory, error)
	ListIDsByCategory(categoryID string) ([]string, error)
	DeactivateByCategory(categoryID string) (int64, error)
	DeleteByCategory(categoryID string) (int64, error)
	Delete(id string) error
	Count() (int64, error)
}
