package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP del árbol de categorías.
type CategoryHandler struct {
	manager  *usecase.CategoryManager
	importer *usecase.CategoryImportUseCase
}

// NewCategoryHandler construye el handler. importer puede ser nil (sin endpoint de importación).
func NewCategoryHandler(manager *usecase.CategoryManager, importer *usecase.CategoryImportUseCase) *CategoryHandler {
	return &CategoryHandler{manager: manager, importer: importer}
}

// Create godoc
// @Summary      Crear categoría
// @Description  Si trae parent_id, el padre debe existir. El id del cuerpo se ignora.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	out, err := h.manager.Create(c.UserContext(), toCategoryEntity(in))
	if err != nil {
		return respondError(c, err)
	}
	c.Location("/api/categories/" + out.ID)
	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(out))
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.manager.Read(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCategoryResponse(out))
}

// List godoc
// @Summary      Listar categorías
// @Description  Sin categorías responde 404.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.manager.ReadAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCategoryResponses(list))
}

// Update godoc
// @Summary      Actualizar categoría
// @Description  Reemplaza nombre, descripción y padre. Sin parent_id la categoría pasa a ser raíz.
// @Description  En PUT /api/categories el id viaja en el cuerpo; en PUT /api/categories/{id} manda la ruta.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string               false  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true   "Datos de la categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
// @Router       /api/categories [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if id := c.Params("id"); id != "" {
		in.ID = id
	}
	if err := in.Validate(); err != nil {
		return respondError(c, err)
	}
	out, err := h.manager.Update(c.UserContext(), toCategoryEntity(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCategoryResponse(out))
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Solo hojas sin productos asignados.
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.manager.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ancestors godoc
// @Summary      Ruta hasta la raíz
// @Description  Devuelve los ancestros desde el padre inmediato hasta la raíz.
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}   dto.CategoryRefResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/ancestors [get]
func (h *CategoryHandler) Ancestors(c *fiber.Ctx) error {
	path, err := h.manager.Ancestors(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CategoryRefResponse, 0, len(path))
	for _, a := range path {
		out = append(out, *toCategoryRef(a))
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar árbol de categorías
// @Description  Crea todos los nodos en una transacción. Con PostgreSQL, si uno falla no se crea ninguno; con el store en memoria solo se garantiza que un árbol inválido no escribe nada.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CategoryTreeNode  true  "Nodos raíz con sus hijos"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/import [post]
func (h *CategoryHandler) Import(c *fiber.Ctx) error {
	var in []dto.CategoryTreeNode
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := h.importer.Import(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ImportResponse{Created: n})
}
