package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sena-adso/catalogo-api/internal/domain"
)

// SQLSTATE unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation indica si el error es una violación de índice único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// userUniqueError traduce una violación de unicidad sobre users al error de
// dominio según el índice violado. El pre-chequeo del caso de uso puede
// perder la carrera contra un INSERT concurrente, así que el constraint es
// la última palabra sobre cuál de los dos campos chocó.
// Devuelve nil si el error no es una violación de unicidad.
func userUniqueError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailAlreadyExists
}
