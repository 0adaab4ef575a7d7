package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sena-adso/catalogo-api/internal/application/auth"
	"github.com/sena-adso/catalogo-api/internal/application/usecase"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	StatisticsUC  *usecase.StatisticsUseCase
	AuthUC        *auth.AuthUseCase
	Users         repository.UserRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
//
// Lectura del catálogo es pública; escritura requiere token y rol. La matriz
// de roles: admin y coordinador gestionan categorías y subcategorías, los tres
// roles crean productos, solo admin elimina.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users)
	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	anyStaff := RequireRole(entity.RoleAdmin, entity.RoleCoordinador, entity.RoleAuxiliar)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	// Categories: lectura pública, escritura admin/coordinador
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authRequired, managers, categoryHandler.Create)
	categories.Put("/:id", authRequired, managers, categoryHandler.Update)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	// Subcategories: mismo esquema que categorías
	subcategories := api.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Post("/", authRequired, managers, subcategoryHandler.Create)
	subcategories.Put("/:id", authRequired, managers, subcategoryHandler.Update)
	subcategories.Delete("/:id", authRequired, adminOnly, subcategoryHandler.Delete)

	// Products: lectura pública con auth opcional (la respuesta oculta
	// created_by a los auxiliares); creación abierta a los tres roles
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", OptionalAuth(deps.JWTSecret), productHandler.List)
	products.Get("/:id", OptionalAuth(deps.JWTSecret), productHandler.GetByID)
	products.Post("/", authRequired, anyStaff, productHandler.Create)
	products.Put("/:id", authRequired, managers, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Users: cualquier autenticado entra; la visibilidad fina por rol la
	// decide el caso de uso. Solo admin elimina.
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Statistics (protegido)
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC)
	api.Get("/statistics", authRequired, statisticsHandler.Get)
}
