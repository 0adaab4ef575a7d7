package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es la hoja de la jerarquía: pertenece a una subcategoría que a su
// vez debe pertenecer a la categoría referenciada (ambos campos se validan
// juntos). CreatedBy registra quién lo creó cuando hay un usuario autenticado.
type Product struct {
	ID            string
	Name          string // único
	Description   string
	Price         decimal.Decimal // >= 0
	Stock         int             // >= 0
	CategoryID    string
	SubcategoryID string
	CreatedBy     string   // id de User; vacío si se creó sin sesión
	Images        []string // URLs, orden preservado
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Poblados en listados (JOIN); no se persisten.
	CategoryName    string
	SubcategoryName string
}
