package repository

import "github.com/sena-adso/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de cascada devuelven filas afectadas; sobre un conjunto vacío
// son no-op exitosos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(includeInactive bool) ([]*entity.Product, error)
	// DeactivateByCategoryOrSubcategories cubre productos que referencian la
	// categoría directamente O cualquiera de sus subcategorías: la cascada
	// atraviesa el nivel de subcategoría, no solo la referencia directa.
	DeactivateByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error)
	DeleteByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error)
	DeactivateBySubcategory(subcategoryID string) (int64, error)
	DeleteBySubcategory(subcategoryID string) (int64, error)
	Delete(id string) error
	Count() (int64, error)
}
