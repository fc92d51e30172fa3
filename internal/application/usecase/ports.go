package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AssignedProductCounter es lo único que el gestor de categorías necesita del store de productos.
type AssignedProductCounter interface {
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
