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

// SubcategoryUseCase casos de uso CRUD para subcategorías: validación del
// padre y cascada un nivel hacia abajo (productos).
type SubcategoryUseCase struct {
	subcategories repository.SubcategoryRepository
	categories    repository.CategoryRepository
	products      repository.ProductRepository
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(subcategories repository.SubcategoryRepository, categories repository.CategoryRepository, products repository.ProductRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{subcategories: subcategories, categories: categories, products: products}
}

// Create crea una subcategoría. La categoría padre debe existir
// (ErrParentNotFound si no); el nombre es único en la colección.
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Category == "" {
		return nil, domain.ErrValidation
	}
	parent, err := uc.categories.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}
	existing, err := uc.subcategories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		CategoryID:   parent.ID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
		CategoryName: parent.Name,
	}
	if err := uc.subcategories.Create(subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// GetByID obtiene una subcategoría por ID con el padre expandido.
// Devuelve (nil, nil) si no existe.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.subcategories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, nil
	}
	return toSubcategoryResponse(subcategory), nil
}

// List lista subcategorías; por defecto solo las activas.
func (uc *SubcategoryUseCase) List(includeInactive bool) ([]dto.SubcategoryResponse, error) {
	list, err := uc.subcategories.List(includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items, nil
}

// Update aplica solo los campos presentes. Un cambio de nombre re-comprueba
// unicidad excluyendo el propio id; un cambio de categoría revalida que el
// nuevo padre exista.
func (uc *SubcategoryUseCase) Update(id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.subcategories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrValidation
		}
		if name != subcategory.Name {
			existing, err := uc.subcategories.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
		}
		subcategory.Name = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrValidation
		}
		subcategory.Description = description
	}
	if in.Category != nil && *in.Category != subcategory.CategoryID {
		parent, err := uc.categories.GetByID(*in.Category)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
		subcategory.CategoryID = parent.ID
		subcategory.CategoryName = parent.Name
	}
	if in.Active != nil {
		subcategory.Active = *in.Active
	}
	subcategory.UpdatedAt = time.Now()
	if err := uc.subcategories.Update(subcategory); err != nil {
		return nil, err
	}
	if subcategory.CategoryName == "" {
		if parent, err := uc.categories.GetByID(subcategory.CategoryID); err == nil && parent != nil {
			subcategory.CategoryName = parent.Name
		}
	}
	return toSubcategoryResponse(subcategory), nil
}

// Delete elimina o desactiva una subcategoría. Hard borra primero sus
// productos y luego la subcategoría; soft la desactiva y desactiva sus
// productos. Cero descendientes sigue siendo éxito (conteo 0).
func (uc *SubcategoryUseCase) Delete(id string, hard bool) (*dto.SubcategoryDeleteResponse, error) {
	subcategory, err := uc.subcategories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}

	if hard {
		products, err := uc.products.DeleteBySubcategory(id)
		if err != nil {
			return nil, err
		}
		if err := uc.subcategories.Delete(id); err != nil {
			return nil, err
		}
		return &dto.SubcategoryDeleteResponse{Hard: true, Products: products}, nil
	}

	subcategory.Active = false
	subcategory.UpdatedAt = time.Now()
	if err := uc.subcategories.Update(subcategory); err != nil {
		return nil, err
	}
	products, err := uc.products.DeactivateBySubcategory(id)
	if err != nil {
		return nil, err
	}
	return &dto.SubcategoryDeleteResponse{Hard: false, Products: products}, nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    dto.NamedRef{ID: s.CategoryID, Name: s.CategoryName},
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
