package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los adaptadores de persistencia los producen
// en lugar de exponer errores del driver.
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateName      = errors.New("ya existe un registro con ese nombre")
	ErrParentNotFound     = errors.New("la categoría padre no existe")
	ErrInvalidRelation    = errors.New("la subcategoría no pertenece a la categoría indicada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
