package memory

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner pasa los stores en memoria directamente a fn. No hay rollback: lo escrito antes de un error queda.
type TxRunner struct {
	categories *CategoryStore
	products   *ProductStore
}

// NewTxRunner construye el runner sobre los stores enlazados por NewStores.
func NewTxRunner(categories *CategoryStore, products *ProductStore) *TxRunner {
	return &TxRunner{categories: categories, products: products}
}

// Run ejecuta fn con los stores.
func (r *TxRunner) Run(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.categories, r.products)
}
