// seed aplica el esquema inicial y crea el usuario administrador si no existe.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que la API (DATABASE_URL
// o DB_HOST/DB_PORT/...). El password del admin sale de SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/infrastructure/postgres"
	"github.com/sena-adso/catalogo-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 1. Esquema
	schemaPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "001_init.sql")
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	// 2. Usuario admin inicial (idempotente: no toca uno existente)
	users := postgres.NewUserRepository(pool)
	username := envOr("SEED_ADMIN_USERNAME", "admin")
	existing, err := users.GetByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("Usuario %q ya existe, nada que hacer\n", username)
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if len(password) < 10 {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD debe tener al menos 10 caracteres")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        envOr("SEED_ADMIN_EMAIL", "admin@sena.edu.co"),
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario admin %q creado (%s)\n", admin.Username, admin.Email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
