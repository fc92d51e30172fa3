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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Columnas de la categoría (c) y de su padre (p) vía LEFT JOIN.
const categoryWithParentSelect = `
		SELECT c.id, c.name, c.description, c.parent_id, c.created_at, c.updated_at,
		       p.id, p.name, p.description, p.parent_id, p.created_at, p.updated_at
		FROM categories c
		LEFT JOIN categories p ON p.id = c.parent_id`

// Upsert por id; en la rama UPDATE created_at conserva el valor original.
const upsertCategorySQL = `
		INSERT INTO categories (id, name, description, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
		    parent_id = EXCLUDED.parent_id, updated_at = EXCLUDED.updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// FindByID obtiene una categoría con su padre y sus hijos directos.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	row := r.q.QueryRow(ctx, categoryWithParentSelect+` WHERE c.id = $1`, id)
	c, err := scanCategoryWithParent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	children, err := r.findChildren(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Children = children
	return c, nil
}

// Exists informa si hay una categoría con ese ID.
func (r *CategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return ok, nil
}

// FindAll lista todas las categorías en orden de creación. Los hijos se resuelven desde el mismo resultado.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, categoryWithParentSelect+` ORDER BY c.created_at, c.id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategoryWithParent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	byID := make(map[string]*entity.Category, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	for _, c := range list {
		if parent, ok := byID[c.ParentID]; ok {
			parent.Children = append(parent.Children, shallowCategory(c))
		}
	}
	return list, nil
}

// SaveAndFlush inserta o actualiza la categoría y la relee (padre e hijos resueltos).
// El padre persistido es category.Parent; ParentID sin Parent resuelto se ignora.
func (r *CategoryRepo) SaveAndFlush(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	id := category.ID
	if id == "" {
		id = uuid.New().String()
	}
	var parentID *string
	if category.Parent != nil {
		parentID = nullable(category.Parent.ID)
	}
	now := time.Now()
	if _, err := r.q.Exec(ctx, upsertCategorySQL, id, category.Name, category.Description, parentID, now); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("save category: %w", err)
	}
	saved, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("save category: fila %s no visible tras escribir", id)
	}
	return saved, nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) findChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, parent_id, created_at, updated_at
		FROM categories WHERE parent_id = $1 ORDER BY created_at, id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()
	var children []*entity.Category
	for rows.Next() {
		var c entity.Category
		var pid *string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &pid, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		c.ParentID = deref(pid)
		children = append(children, &c)
	}
	return children, rows.Err()
}

func scanCategoryWithParent(row pgx.Row) (*entity.Category, error) {
	var (
		c                            entity.Category
		parentID                     *string
		pID, pName, pDesc, pParentID *string
		pCreatedAt, pUpdatedAt       *time.Time
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &parentID, &c.CreatedAt, &c.UpdatedAt,
		&pID, &pName, &pDesc, &pParentID, &pCreatedAt, &pUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ParentID = deref(parentID)
	if pID != nil {
		p := &entity.Category{
			ID:          *pID,
			Name:        deref(pName),
			Description: deref(pDesc),
			ParentID:    deref(pParentID),
		}
		if pCreatedAt != nil {
			p.CreatedAt = *pCreatedAt
		}
		if pUpdatedAt != nil {
			p.UpdatedAt = *pUpdatedAt
		}
		c.Parent = p
	}
	return &c, nil
}

// shallowCategory copia los campos propios sin relaciones (vista de hijo).
func shallowCategory(c *entity.Category) *entity.Category {
	return &entity.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
