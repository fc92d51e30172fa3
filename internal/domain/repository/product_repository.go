package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	SaveAndFlush(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	// CountByCategory cuenta los productos asignados a la categoría.
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}
