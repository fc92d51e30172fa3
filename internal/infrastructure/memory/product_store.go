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

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore guarda productos en memoria. La categoría se resuelve contra el CategoryStore asociado.
type ProductStore struct {
	mu         sync.RWMutex
	rows       map[string]entity.Product
	order      []string
	categories *CategoryStore
	now        func() time.Time
}

// NewStores construye los dos stores enlazados (la FK producto -> categoría se respeta en ambos sentidos).
func NewStores() (*CategoryStore, *ProductStore) {
	categories := NewCategoryStore()
	products := &ProductStore{
		rows:       make(map[string]entity.Product),
		categories: categories,
		now:        time.Now,
	}
	categories.products = products
	return categories, products
}

// FindByID devuelve el producto con su categoría, o (nil, nil).
func (s *ProductStore) FindByID(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	row, ok := s.rows[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return s.resolve(row), nil
}

// Exists informa si hay un producto con ese ID.
func (s *ProductStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[id]
	return ok, nil
}

// FindAll devuelve los productos en orden de inserción.
func (s *ProductStore) FindAll(_ context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	rows := make([]entity.Product, 0, len(s.order))
	for _, id := range s.order {
		rows = append(rows, s.rows[id])
	}
	s.mu.RUnlock()

	list := make([]*entity.Product, 0, len(rows))
	for _, r := range rows {
		list = append(list, s.resolve(r))
	}
	return list, nil
}

// SaveAndFlush inserta o actualiza. La categoría guardada es product.Category.
// Orden de locks: categorías (lectura) y luego productos, el mismo que CategoryStore.Delete.
func (s *ProductStore) SaveAndFlush(_ context.Context, product *entity.Product) (*entity.Product, error) {
	row := entity.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Currency:    product.Currency,
	}

	s.categories.mu.RLock()
	defer s.categories.mu.RUnlock()
	var category *entity.Category
	if product.Category != nil {
		c, ok := s.categories.rows[product.Category.ID]
		if !ok {
			return nil, domain.ErrConflict
		}
		row.CategoryID = c.id
		category = c.toEntity()
	}

	s.mu.Lock()
	row.UpdatedAt = s.now()
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	if prev, ok := s.rows[row.ID]; ok {
		row.CreatedAt = prev.CreatedAt
	} else {
		row.CreatedAt = row.UpdatedAt
		s.order = append(s.order, row.ID)
	}
	s.rows[row.ID] = row
	s.mu.Unlock()

	saved := row
	saved.Category = category
	return &saved, nil
}

// Delete elimina un producto por ID.
func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil
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

// CountByCategory cuenta los productos asignados a la categoría.
func (s *ProductStore) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, r := range s.rows {
		if r.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *ProductStore) resolve(row entity.Product) *entity.Product {
	p := row
	p.Category = nil
	if row.CategoryID != "" {
		if c, ok := s.categories.lookup(row.CategoryID); ok {
			p.Category = c.toEntity()
		}
	}
	return &p
}
