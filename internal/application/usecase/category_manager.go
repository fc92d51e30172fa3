package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/tree"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

const categoryEntity = "categoría"

// CategoryManager aplica las reglas del árbol de categorías antes de escribir en el store.
// No guarda estado entre llamadas: cada operación relee lo que necesita, así que es seguro usarlo concurrentemente.
// Los errores del store se devuelven sin modificar.
type CategoryManager struct {
	repo     repository.CategoryRepository
	products AssignedProductCounter
	log      *logger.Logger
}

// NewCategoryManager construye el gestor.
func NewCategoryManager(repo repository.CategoryRepository, products AssignedProductCounter, log *logger.Logger) *CategoryManager {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryManager{repo: repo, products: products, log: log.Named("category_manager")}
}

// Create persiste una categoría nueva. Si trae ParentID, el padre debe existir.
func (m *CategoryManager) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	// El ID lo asigna el store; create nunca sobrescribe una fila existente.
	category.ID = ""
	if err := m.resolveParent(ctx, category); err != nil {
		return nil, err
	}
	created, err := m.repo.SaveAndFlush(ctx, category)
	if err != nil {
		return nil, err
	}
	m.log.Info().
		Str("id", created.ID).
		Str("parent_id", created.ParentID).
		Msg("categoría creada")
	return created, nil
}

// Read obtiene una categoría por ID con su padre resuelto.
func (m *CategoryManager) Read(ctx context.Context, id string) (*entity.Category, error) {
	category, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.EntityNotFound(categoryEntity, id)
	}
	return category, nil
}

// ReadAll devuelve todas las categorías. Un resultado vacío se informa como EntityNotFound, no como lista vacía.
func (m *CategoryManager) ReadAll(ctx context.Context) ([]*entity.Category, error) {
	list, err := m.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.EntityNotFound(categoryEntity, "")
	}
	return list, nil
}

// Update reemplaza nombre, descripción y padre de una categoría existente.
// Orden: existencia del ID, existencia del padre, ciclo, escritura. Sin ParentID la categoría pasa a ser raíz.
func (m *CategoryManager) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	ok, err := m.repo.Exists(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.EntityNotFound(categoryEntity, category.ID)
	}
	if err := m.resolveParent(ctx, category); err != nil {
		return nil, err
	}
	if category.Parent != nil {
		if err := tree.EnsureNotAncestor(ctx, m.repo.FindByID, category.ID, category.Parent); err != nil {
			m.log.Warn().
				Str("id", category.ID).
				Str("parent_id", category.Parent.ID).
				Msg("cambio de padre rechazado: ciclo")
			return nil, err
		}
	}
	updated, err := m.repo.SaveAndFlush(ctx, category)
	if err != nil {
		return nil, err
	}
	m.log.Info().
		Str("id", updated.ID).
		Str("parent_id", updated.ParentID).
		Msg("categoría actualizada")
	return updated, nil
}

// Delete elimina una hoja sin productos asignados.
func (m *CategoryManager) Delete(ctx context.Context, id string) error {
	category, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.EntityNotFound(categoryEntity, id)
	}
	if !category.IsLeaf() {
		m.log.Warn().Str("id", id).Int("children", len(category.Children)).Msg("borrado rechazado: tiene hijos")
		return domain.CannotDeleteNonLeafNodes(id, len(category.Children))
	}
	assigned, err := m.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		m.log.Warn().Str("id", id).Int64("products", assigned).Msg("borrado rechazado: tiene productos")
		return domain.CannotDeleteCategoryAssignedToProducts(id, assigned)
	}
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.log.Info().Str("id", id).Msg("categoría eliminada")
	return nil
}

// Ancestors devuelve la ruta desde el padre inmediato hasta la raíz.
func (m *CategoryManager) Ancestors(ctx context.Context, id string) ([]*entity.Category, error) {
	category, err := m.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	return tree.Ancestors(ctx, m.repo.FindByID, category)
}

// resolveParent busca category.ParentID en el store y lo adjunta; sin ParentID deja la categoría como raíz.
func (m *CategoryManager) resolveParent(ctx context.Context, category *entity.Category) error {
	if category.ParentID == "" {
		category.AttachParent(nil)
		return nil
	}
	parent, err := m.repo.FindByID(ctx, category.ParentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.EntityNotFound("categoría padre", category.ParentID)
	}
	m.log.Debug().Str("parent_id", parent.ID).Msg("padre resuelto")
	category.AttachParent(parent)
	return nil
}
