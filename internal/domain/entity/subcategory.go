package entity

import "time"

// Subcategory pertenece exactamente a una Category y puede tener varios
// productos. CategoryID debe apuntar a una categoría existente al crearla
// y cada vez que se reasigna.
type Subcategory struct {
	ID          string
	Name        string // único, sin espacios al inicio/final
	Description string
	CategoryID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName se puebla en listados (JOIN); no se persiste.
	CategoryName string
}
