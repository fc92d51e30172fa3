package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// FindByID devuelve (nil, nil) si no existe; las categorías devueltas traen Parent y Children resueltos (un nivel).
type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	// SaveAndFlush inserta (asignando ID si está vacío) o actualiza, y devuelve la fila persistida.
	SaveAndFlush(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
