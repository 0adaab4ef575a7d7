package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateCategoryRequest actualización parcial: solo se aplican los campos presentes.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryDeleteResponse conteos de descendientes afectados por la cascada.
// En hard delete son filas eliminadas; en soft delete, filas desactivadas.
type CategoryDeleteResponse struct {
	Hard          bool  `json:"hard"`
	Subcategories int64 `json:"subcategories"`
	Products      int64 `json:"products"`
}
