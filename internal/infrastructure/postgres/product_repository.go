package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productWithCategorySelect = `
		SELECT pr.id, pr.category_id, pr.name, pr.description, pr.price, pr.currency, pr.created_at, pr.updated_at,
		       c.name, c.description, c.parent_id
		FROM products pr
		LEFT JOIN categories c ON c.id = pr.category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindByID obtiene un producto por ID con su categoría resuelta.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, productWithCategorySelect+` WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Exists informa si hay un producto con ese ID.
func (r *ProductRepo) Exists(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return ok, nil
}

// FindAll lista todos los productos en orden de creación.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, productWithCategorySelect+` ORDER BY pr.created_at, pr.id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SaveAndFlush inserta o actualiza el producto y lo relee. La categoría persistida es product.Category.
func (r *ProductRepo) SaveAndFlush(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	id := product.ID
	if id == "" {
		id = uuid.New().String()
	}
	var categoryID *string
	if product.Category != nil {
		categoryID = nullable(product.Category.ID)
	}
	query := `
		INSERT INTO products (id, category_id, name, description, price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO UPDATE
		SET category_id = EXCLUDED.category_id, name = EXCLUDED.name, description = EXCLUDED.description,
		    price = EXCLUDED.price, currency = EXCLUDED.currency, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		id, categoryID, product.Name, product.Description, product.Price, product.Currency, time.Now(),
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("save product: %w", err)
	}
	saved, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("save product: fila %s no visible tras escribir", id)
	}
	return saved, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCategory cuenta los productos asignados a la categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	if !isUUID(categoryID) {
		return 0, nil
	}
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p                     entity.Product
		categoryID            *string
		cName, cDesc, cParent *string
	)
	err := row.Scan(
		&p.ID, &categoryID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.CreatedAt, &p.UpdatedAt,
		&cName, &cDesc, &cParent,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.AssignCategory(&entity.Category{
			ID:          *categoryID,
			Name:        deref(cName),
			Description: deref(cDesc),
			ParentID:    deref(cParent),
		})
	}
	return &p, nil
}
