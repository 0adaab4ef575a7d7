package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
	RoleAuxiliar    = "auxiliar"
)

// ValidRole indica si el rol es uno de los tres del sistema.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCoordinador || role == RoleAuxiliar
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, coordinador, auxiliar
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
