package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y Stock son
// punteros para distinguir "ausente" de cero en la validación de presencia.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required"`
	Category    string           `json:"category" validate:"required,uuid"`
	Subcategory string           `json:"subcategory" validate:"required,uuid"`
	Images      []string         `json:"images"`
}

// UpdateProductRequest actualización parcial; si Category o Subcategory
// cambian se revalida la relación completa como en la creación.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
	Images      []string         `json:"images"`
	Active      *bool            `json:"active"`
}

// ProductResponse salida con padres expandidos a {id, name}.
// CreatedBy se omite para llamadores con rol auxiliar.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    NamedRef        `json:"category"`
	Subcategory NamedRef        `json:"subcategory"`
	CreatedBy   string          `json:"created_by,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
