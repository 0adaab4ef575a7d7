package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/domain"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías, incluida la cascada
// soft/hard sobre subcategorías y productos.
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	products      repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso con los tres puertos que
// participan en la cascada.
func NewCategoryUseCase(categories repository.CategoryRepository, subcategories repository.SubcategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, subcategories: subcategories, products: products}
}

// Create crea una categoría. Nombre y descripción son obligatorios y se
// recortan; nombre duplicado (exacto tras el trim) devuelve ErrDuplicateName.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías; por defecto solo las activas.
func (uc *CategoryUseCase) List(includeInactive bool) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update aplica solo los campos presentes. Si el nombre cambia se vuelve a
// comprobar unicidad excluyendo el propio registro.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrValidation
		}
		if name != category.Name {
			existing, err := uc.categories.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrValidation
		}
		category.Description = description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina o desactiva una categoría con cascada sobre sus
// subcategorías y los productos de ambas.
//
// Hard: borra primero los productos que referencian la categoría o cualquiera
// de sus subcategorías, luego las subcategorías y por último la categoría
// (hijos antes que padre, para no dejar referencias colgantes). Irreversible.
//
// Soft: desactiva primero la categoría y después desciende (subcategorías y
// luego productos); ese orden se mantiene fijo dentro de la llamada. Los
// pasos son idempotentes sobre conjuntos vacíos, así que una cascada
// interrumpida se recupera repitiendo la misma llamada.
func (uc *CategoryUseCase) Delete(id string, hard bool) (*dto.CategoryDeleteResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	subIDs, err := uc.subcategories.ListIDsByCategory(id)
	if err != nil {
		return nil, err
	}

	if hard {
		products, err := uc.products.DeleteByCategoryOrSubcategories(id, subIDs)
		if err != nil {
			return nil, err
		}
		subcategories, err := uc.subcategories.DeleteByCategory(id)
		if err != nil {
			return nil, err
		}
		if err := uc.categories.Delete(id); err != nil {
			return nil, err
		}
		return &dto.CategoryDeleteResponse{Hard: true, Subcategories: subcategories, Products: products}, nil
	}

	category.Active = false
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	subcategories, err := uc.subcategories.DeactivateByCategory(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.DeactivateByCategoryOrSubcategories(id, subIDs)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDeleteResponse{Hard: false, Subcategories: subcategories, Products: products}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
