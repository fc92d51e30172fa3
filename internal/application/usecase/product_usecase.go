package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

const productEntity = "producto"

// ProductUseCase casos de uso CRUD para productos. Mismas reglas base que las categorías
// (lista vacía = no encontrado, update verifica existencia primero) más la resolución de la categoría.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, categories: categories, log: log.Named("product_usecase")}
}

// Create persiste un producto nuevo; si trae CategoryID la categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.ID = ""
	if err := uc.resolveCategory(ctx, product); err != nil {
		return nil, err
	}
	created, err := uc.repo.SaveAndFlush(ctx, product)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", created.ID).Str("category_id", created.CategoryID).Msg("producto creado")
	return created, nil
}

// Read obtiene un producto por ID.
func (uc *ProductUseCase) Read(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.EntityNotFound(productEntity, id)
	}
	return product, nil
}

// ReadAll lista todos los productos; vacío es EntityNotFound.
func (uc *ProductUseCase) ReadAll(ctx context.Context) ([]*entity.Product, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.EntityNotFound(productEntity, "")
	}
	return list, nil
}

// Update reemplaza los datos de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	ok, err := uc.repo.Exists(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.EntityNotFound(productEntity, product.ID)
	}
	if err := uc.resolveCategory(ctx, product); err != nil {
		return nil, err
	}
	updated, err := uc.repo.SaveAndFlush(ctx, product)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", updated.ID).Msg("producto actualizado")
	return updated, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.EntityNotFound(productEntity, id)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Msg("producto eliminado")
	return nil
}

func (uc *ProductUseCase) resolveCategory(ctx context.Context, product *entity.Product) error {
	if product.CategoryID == "" {
		product.AssignCategory(nil)
		return nil
	}
	category, err := uc.categories.FindByID(ctx, product.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.EntityNotFound(categoryEntity, product.CategoryID)
	}
	product.AssignCategory(category)
	return nil
}
