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

// ProductUseCase casos de uso CRUD para productos. La regla central: la
// subcategoría referenciada debe pertenecer a la categoría referenciada,
// no basta con que exista.
type ProductUseCase struct {
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, subcategories repository.SubcategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, subcategories: subcategories}
}

// Create crea un producto. Los seis campos son obligatorios; price y stock no
// pueden ser negativos. createdBy registra el id del llamador si hay sesión.
func (uc *ProductUseCase) Create(createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Price == nil || in.Stock == nil || in.Category == "" || in.Subcategory == "" {
		return nil, domain.ErrValidation
	}
	if in.Price.IsNegative() || *in.Stock < 0 {
		return nil, domain.ErrValidation
	}
	parent, err := uc.categories.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrParentNotFound
	}
	subcategory, err := uc.subcategories.GetByIDAndCategory(in.Subcategory, in.Category)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrInvalidRelation
	}
	existing, err := uc.products.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            name,
		Description:     description,
		Price:           *in.Price,
		Stock:           *in.Stock,
		CategoryID:      parent.ID,
		SubcategoryID:   subcategory.ID,
		CreatedBy:       createdBy,
		Images:          in.Images,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
		CategoryName:    parent.Name,
		SubcategoryName: subcategory.Name,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con padres expandidos.
// Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos; por defecto solo los activos.
func (uc *ProductUseCase) List(includeInactive bool) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(includeInactive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica solo los campos presentes. Si cambia category o subcategory
// se revalida la relación completa igual que en la creación.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrValidation
		}
		if name != product.Name {
			existing, err := uc.products.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicateName
			}
		}
		product.Name = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrValidation
		}
		product.Description = description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrValidation
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrValidation
		}
		product.Stock = *in.Stock
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	if in.Category != nil || in.Subcategory != nil {
		categoryID := product.CategoryID
		if in.Category != nil {
			categoryID = *in.Category
		}
		subcategoryID := product.SubcategoryID
		if in.Subcategory != nil {
			subcategoryID = *in.Subcategory
		}
		parent, err := uc.categories.GetByID(categoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
		subcategory, err := uc.subcategories.GetByIDAndCategory(subcategoryID, categoryID)
		if err != nil {
			return nil, err
		}
		if subcategory == nil {
			return nil, domain.ErrInvalidRelation
		}
		product.CategoryID = parent.ID
		product.SubcategoryID = subcategory.ID
		product.CategoryName = parent.Name
		product.SubcategoryName = subcategory.Name
	}

	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina o desactiva un producto. Es hoja: no hay más cascada.
func (uc *ProductUseCase) Delete(id string, hard bool) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if hard {
		if err := uc.products.Delete(id); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	product.Active = false
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    dto.NamedRef{ID: p.CategoryID, Name: p.CategoryName},
		Subcategory: dto.NamedRef{ID: p.SubcategoryID, Name: p.SubcategoryName},
		CreatedBy:   p.CreatedBy,
		Images:      p.Images,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
