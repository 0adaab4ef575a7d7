package entity

import "time"

// Category es la raíz de la jerarquía del catálogo. Una categoría puede tener
// varias subcategorías; desactivarla o eliminarla cae en cascada sobre ellas
// y sobre sus productos.
type Category struct {
	ID          string
	Name        string // único, sin espacios al inicio/final
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
