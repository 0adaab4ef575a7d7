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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
// Los SELECT expanden el nombre de la categoría padre con un JOIN.
type SubcategoryRepo struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepo {
	return &SubcategoryRepo{pool: pool}
}

const subcategorySelect = `
	SELECT s.id, s.name, s.description, s.category_id, s.active, s.created_at, s.updated_at, c.name
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

// Create persiste una nueva subcategoría.
func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		subcategory.Active, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID con el nombre del padre poblado.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	return r.queryOne(subcategorySelect+` WHERE s.id = $1`, id)
}

// GetByName obtiene una subcategoría por nombre exacto.
func (r *SubcategoryRepo) GetByName(name string) (*entity.Subcategory, error) {
	return r.queryOne(subcategorySelect+` WHERE s.name = $1 LIMIT 1`, name)
}

// GetByIDAndCategory obtiene la subcategoría solo si pertenece a esa
// categoría exacta; (nil, nil) en cualquier otro caso.
func (r *SubcategoryRepo) GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error) {
	return r.queryOne(subcategorySelect+` WHERE s.id = $1 AND s.category_id = $2`, id, categoryID)
}

func (r *SubcategoryRepo) queryOne(query string, args ...any) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt, &s.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// Update actualiza una subcategoría.
func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET name = $2, description = $3, category_id = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		subcategory.Active, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// List lista subcategorías con el padre expandido, ordenadas por fecha de
// creación descendente; por defecto excluye las inactivas.
func (r *SubcategoryRepo) List(includeInactive bool) ([]*entity.Subcategory, error) {
	query := subcategorySelect + ` WHERE ($1::bool OR s.active) ORDER BY s.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt, &s.CategoryName); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListIDsByCategory devuelve los ids de las subcategorías de una categoría,
// activas o no (la cascada debe alcanzarlas todas).
func (r *SubcategoryRepo) ListIDsByCategory(categoryID string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id FROM subcategories WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategory ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subcategory id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeactivateByCategory marca inactivas las subcategorías activas de la
// categoría; devuelve filas realmente modificadas (0 es éxito). El predicado
// sobre active mantiene la cascada idempotente: repetirla no re-cuenta ni
// re-sella updated_at en filas ya inactivas.
func (r *SubcategoryRepo) DeactivateByCategory(categoryID string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE subcategories SET active = false, updated_at = now() WHERE category_id = $1 AND active`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("deactivate subcategories: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByCategory elimina todas las subcategorías de la categoría;
// devuelve filas afectadas.
func (r *SubcategoryRepo) DeleteByCategory(categoryID string) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM subcategories WHERE category_id = $1`, categoryID)
	if err != nil {
		return 0, fmt.Errorf("delete subcategories: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina una subcategoría por ID. Borrar una fila inexistente es no-op.
func (r *SubcategoryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

// Count cuenta todas las subcategorías.
func (r *SubcategoryRepo) Count() (int64, error) {
	var n int64
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM subcategories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return n, nil
}
