package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoryImportUseCase carga árboles completos de categorías en una sola transacción.
type CategoryImportUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewCategoryImportUseCase construye el caso de uso.
func NewCategoryImportUseCase(tx TxRunner, log *logger.Logger) *CategoryImportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryImportUseCase{tx: tx, log: log.Named("category_import")}
}

// Import crea cada nodo bajo su padre, en profundidad. Devuelve cuántas categorías se crearon.
// Si un nodo no es válido no se escribe nada.
func (uc *CategoryImportUseCase) Import(ctx context.Context, roots []dto.CategoryTreeNode) (int, error) {
	for i, n := range roots {
		if err := n.Validate(); err != nil {
			return 0, fmt.Errorf("%w: nodo %d: %v", domain.ErrInvalidInput, i, err)
		}
	}
	created := 0
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		manager := NewCategoryManager(categoryRepo, productRepo, uc.log)
		created = 0
		for _, n := range roots {
			if err := uc.createNode(ctx, manager, n, "", &created); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("importación de categorías fallida")
		return 0, err
	}
	uc.log.Info().Int("created", created).Msg("árbol de categorías importado")
	return created, nil
}

func (uc *CategoryImportUseCase) createNode(ctx context.Context, m *CategoryManager, n dto.CategoryTreeNode, parentID string, created *int) error {
	c, err := m.Create(ctx, &entity.Category{Name: n.Name, Description: n.Description, ParentID: parentID})
	if err != nil {
		return err
	}
	*created++
	for _, child := range n.Children {
		if err := uc.createNode(ctx, m, child, c.ID, created); err != nil {
			return err
		}
	}
	return nil
}
