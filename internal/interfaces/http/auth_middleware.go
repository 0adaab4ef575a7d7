package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/sena-adso/catalogo-api/internal/application/dto"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalEmail  = "email"
)

// userResolver es el contrato mínimo que necesita el middleware para
// re-resolver el usuario del token contra la DB. Lo implementa el
// UserRepository; el uso de interfaz evita acoplar el middleware al puerto completo.
type userResolver interface {
	GetByID(id string) (*entity.User, error)
}

// AuthMiddleware valida el token JWT y carga user_id, role y email en
// c.Locals. Acepta dos formatos: "Authorization: Bearer <token>" y el header
// "x-access-token".
//
// Si resolver no es nil, además re-resuelve el usuario en la DB en cada
// petición: un token de un usuario desactivado o eliminado deja de valer de
// inmediato en vez de seguir vivo hasta su expiración, y el rol efectivo es
// el de la DB, no el del claim.
func AuthMiddleware(jwtSecret string, resolver userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "token no proporcionado"})
		}
		userID, role, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "TOKEN_EXPIRED", Message: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "token inválido"})
		}
		if resolver != nil {
			user, err := resolver.GetByID(userID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: "AUTH_CHECK_FAILED", Message: "no se pudo verificar el usuario, intente más tarde"})
			}
			if user == nil || !user.Active {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "usuario inactivo o eliminado"})
			}
			role = user.Role
			email = user.Email
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// OptionalAuth intenta cargar los claims si viene un token válido, pero nunca
// rechaza la petición. Se usa en rutas públicas cuya respuesta varía según el
// rol (ej. ocultar created_by a auxiliares).
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Next()
		}
		userID, role, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// RequireRole autoriza la petición solo si el rol del llamador está en la
// lista. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "FORBIDDEN", Message: "rol sin permisos para esta operación"})
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get("x-access-token"))
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
