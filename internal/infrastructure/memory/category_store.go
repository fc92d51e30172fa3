// Package memory implementa los repositorios en memoria (desarrollo local y tests sin PostgreSQL).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryStore)(nil)

// categoryRow es lo que se guarda: sin punteros a otras categorías, solo parentID.
type categoryRow struct {
	id, name, description, parentID string
	createdAt, updatedAt            time.Time
}

// CategoryStore guarda las categorías en un mapa por id; el orden de inserción se conserva.
// Las relaciones se resuelven por búsqueda al leer.
type CategoryStore struct {
	mu    sync.RWMutex
	rows  map[string]categoryRow
	order []string
	now   func() time.Time

	// products permite rechazar el borrado de una categoría referenciada, como la FK en PostgreSQL.
	products *ProductStore
}

// NewCategoryStore construye el store vacío.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{rows: make(map[string]categoryRow), now: time.Now}
}

// FindByID devuelve la categoría con padre e hijos resueltos, o (nil, nil).
func (s *CategoryStore) FindByID(_ context.Context, id string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return s.resolve(row), nil
}

// Exists informa si hay una categoría con ese ID.
func (s *CategoryStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[id]
	return ok, nil
}

// FindAll devuelve todas las categorías en orden de inserción.
func (s *CategoryStore) FindAll(_ context.Context) ([]*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Category, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.resolve(s.rows[id]))
	}
	return list, nil
}

// SaveAndFlush inserta o actualiza. El padre guardado es category.Parent (ParentID suelto se ignora).
func (s *CategoryStore) SaveAndFlush(_ context.Context, category *entity.Category) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := categoryRow{
		id:          category.ID,
		name:        category.Name,
		description: category.Description,
		updatedAt:   s.now(),
	}
	if category.Parent != nil {
		if _, ok := s.rows[category.Parent.ID]; !ok {
			return nil, domain.ErrConflict
		}
		row.parentID = category.Parent.ID
	}
	if row.id == "" {
		row.id = uuid.New().String()
	}
	if prev, ok := s.rows[row.id]; ok {
		row.createdAt = prev.createdAt
	} else {
		row.createdAt = row.updatedAt
		s.order = append(s.order, row.id)
	}
	s.rows[row.id] = row
	return s.resolve(row), nil
}

// Delete elimina la categoría. Falla con ErrConflict si aún tiene hijos o productos (integridad referencial).
// El lock de categorías se mantiene durante el conteo de productos: ProductStore.SaveAndFlush toma el mismo
// lock (en lectura) antes que el suyo, así un producto no puede asignarse a una categoría en pleno borrado.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil
	}
	for _, r := range s.rows {
		if r.parentID == id {
			return domain.ErrConflict
		}
	}
	if s.products != nil {
		n, err := s.products.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
	}
	delete(s.rows, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// resolve arma la entidad con vistas de un nivel. Requiere s.mu tomado.
func (s *CategoryStore) resolve(row categoryRow) *entity.Category {
	c := row.toEntity()
	if parent, ok := s.rows[row.parentID]; ok && row.parentID != "" {
		c.Parent = parent.toEntity()
	}
	for _, id := range s.order {
		if child := s.rows[id]; child.parentID == row.id {
			c.Children = append(c.Children, child.toEntity())
		}
	}
	return c
}

func (r categoryRow) toEntity() *entity.Category {
	return &entity.Category{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		ParentID:    r.parentID,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
}

// lookup devuelve la fila sin resolver relaciones.
func (s *CategoryStore) lookup(id string) (categoryRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	return r, ok
}
