package dto

import "time"

// CreateSubcategoryRequest entrada para crear una subcategoría.
// Category es el id de la categoría padre (debe existir).
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category" validate:"required,uuid"`
}

// UpdateSubcategoryRequest actualización parcial; si Category cambia se
// revalida que el nuevo padre exista.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Active      *bool   `json:"active"`
}

// SubcategoryResponse salida con el padre expandido a {id, name}.
type SubcategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    NamedRef  `json:"category"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubcategoryDeleteResponse conteo de productos afectados por la cascada.
type SubcategoryDeleteResponse struct {
	Hard     bool  `json:"hard"`
	Products int64 `json:"products"`
}
