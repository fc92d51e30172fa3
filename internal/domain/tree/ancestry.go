// Package tree contiene las reglas de integridad del árbol de categorías.
package tree

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Loader resuelve una categoría por id; devuelve (nil, nil) si no existe.
type Loader func(ctx context.Context, id string) (*entity.Category, error)

// EnsureNotAncestor recorre la cadena de ancestros de candidate (el nuevo padre propuesto) hasta la raíz
// y falla con CyclicHierarchyDetected si encuentra nodeID. Usa la vista Parent cuando viene resuelta y,
// si solo se conoce ParentID, la pide a load. Un eslabón inexistente se trata como raíz.
func EnsureNotAncestor(ctx context.Context, load Loader, nodeID string, candidate *entity.Category) error {
	if candidate == nil {
		return nil
	}
	seen := make(map[string]struct{})
	current := candidate
	for current != nil {
		if current.ID == nodeID {
			return domain.CyclicHierarchyDetected(nodeID, candidate.ID)
		}
		// El árbol persistido ya debería ser acíclico; si no lo es, no se puede colgar nada de él.
		if _, ok := seen[current.ID]; ok {
			return domain.CyclicHierarchyDetected(nodeID, candidate.ID)
		}
		seen[current.ID] = struct{}{}

		next := current.Parent
		if next == nil && current.ParentID != "" {
			var err error
			next, err = load(ctx, current.ParentID)
			if err != nil {
				return err
			}
		}
		current = next
	}
	return nil
}

// Ancestors devuelve la cadena desde el padre inmediato de c hasta la raíz.
func Ancestors(ctx context.Context, load Loader, c *entity.Category) ([]*entity.Category, error) {
	var chain []*entity.Category
	seen := map[string]struct{}{c.ID: {}}
	current := c
	for {
		next := current.Parent
		if next == nil && current.ParentID != "" {
			var err error
			next, err = load(ctx, current.ParentID)
			if err != nil {
				return nil, err
			}
		}
		if next == nil {
			return chain, nil
		}
		if _, ok := seen[next.ID]; ok {
			return nil, domain.CyclicHierarchyDetected(c.ID, next.ID)
		}
		seen[next.ID] = struct{}{}
		chain = append(chain, next)
		current = next
	}
}
