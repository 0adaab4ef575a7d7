package dto

// Response envoltura estándar de la API: {success, message?, data?, error?}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse cuerpo de error HTTP con la misma envoltura que Response:
// el campo error lleva el código estable y message el texto legible.
// Success queda en false por valor cero.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

// NamedRef referencia expandida mínima {id, name} de un padre en listados.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatisticsResponse totales por colección.
type StatisticsResponse struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalProducts      int64 `json:"totalProducts"`
	TotalCategories    int64 `json:"totalCategories"`
	TotalSubcategories int64 `json:"totalSubcategories"`
}
