package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sena-adso/catalogo-api/internal/domain"
	"github.com/sena-adso/catalogo-api/internal/domain/entity"
	"github.com/sena-adso/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los SELECT expanden los nombres de categoría y subcategoría con JOINs.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.subcategory_id,
	       COALESCE(p.created_by::text, ''), p.images, p.active, p.created_at, p.updated_at,
	       c.name, s.name
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN subcategories s ON s.id = p.subcategory_id`

// Create persiste un nuevo producto. created_by vacío se guarda como NULL.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, subcategory_id, created_by, images, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.CreatedBy, product.Images,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con los padres poblados.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.queryOne(productSelect+` WHERE p.id = $1`, id)
}

// GetByName obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.queryOne(productSelect+` WHERE p.name = $1 LIMIT 1`, name)
}

func (r *ProductRepo) queryOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.SubcategoryID,
		&p.CreatedBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.SubcategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5,
			category_id = $6, subcategory_id = $7, images = $8, active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.Images, product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con padres expandidos, ordenados por fecha de creación
// descendente; por defecto excluye los inactivos.
func (r *ProductRepo) List(includeInactive bool) ([]*entity.Product, error) {
	query := productSelect + ` WHERE ($1::bool OR p.active) ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.SubcategoryID,
			&p.CreatedBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SubcategoryName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeactivateByCategoryOrSubcategories marca inactivos los productos activos
// que referencian la categoría directamente o cualquiera de sus subcategorías.
// Devuelve filas realmente modificadas (0 es éxito); las ya inactivas no se
// re-cuentan, para que la cascada repetida reporte cero.
func (r *ProductRepo) DeactivateByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now()
		 WHERE (category_id = $1 OR subcategory_id = ANY($2::uuid[])) AND active`,
		categoryID, subcategoryIDs)
	if err != nil {
		return 0, fmt.Errorf("deactivate products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByCategoryOrSubcategories elimina los productos que referencian la
// categoría o cualquiera de sus subcategorías. Devuelve filas afectadas.
func (r *ProductRepo) DeleteByCategoryOrSubcategories(categoryID string, subcategoryIDs []string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE category_id = $1 OR subcategory_id = ANY($2::uuid[])`,
		categoryID, subcategoryIDs)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeactivateBySubcategory marca inactivos los productos activos de una
// subcategoría; devuelve filas realmente modificadas.
func (r *ProductRepo) DeactivateBySubcategory(subcategoryID string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE subcategory_id = $1 AND active`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("deactivate products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBySubcategory elimina los productos de una subcategoría.
func (r *ProductRepo) DeleteBySubcategory(subcategoryID string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE subcategory_id = $1`, subcategoryID)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un producto por ID. Borrar una fila inexistente es no-op.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Count cuenta todos los productos.
func (r *ProductRepo) Count() (int64, error) {
	var n int64
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
