package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/sena-adso/catalogo-api/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})),
		"debe detectar el error aunque venga envuelto")
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "otras violaciones no cuentan")
	assert.False(t, isUniqueViolation(errors.New("sin código")))
}

// El constraint violado decide el error de dominio: un choque de username que
// pase el pre-chequeo del caso de uso no debe reportarse como email duplicado.
func TestUserUniqueError_DistinguePorConstraint(t *testing.T) {
	username := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	assert.ErrorIs(t, userUniqueError(username), domain.ErrUsernameTaken)

	email := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.ErrorIs(t, userUniqueError(email), domain.ErrEmailAlreadyExists)

	wrapped := fmt.Errorf("update user: %w", username)
	assert.ErrorIs(t, userUniqueError(wrapped), domain.ErrUsernameTaken)
}

func TestUserUniqueError_NoAplicaEnOtrosErrores(t *testing.T) {
	assert.NoError(t, userUniqueError(&pgconn.PgError{Code: "23503"}))
	assert.NoError(t, userUniqueError(errors.New("timeout")))
}
