package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Límites de longitud de los textos de una categoría.
const (
	MaxCategoryNameLength        = 255
	MaxCategoryDescriptionLength = 2000
)

// CategoryRequest entrada para crear o actualizar una categoría.
// En create el ID se ignora; en PUT /api/categories viaja en el cuerpo.
type CategoryRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// Validate revisa la forma del request (no las reglas del árbol).
func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxCategoryNameLength)),
		validation.Field(&r.Description, validation.Length(0, MaxCategoryDescriptionLength)),
		validation.Field(&r.ParentID, validation.NilOrNotEmpty),
	)
}

// CategoryRefResponse vista corta de una categoría relacionada (padre, hijo, ancestro).
type CategoryRefResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	ParentID    *string               `json:"parent_id"`
	Parent      *CategoryRefResponse  `json:"parent"`
	Children    []CategoryRefResponse `json:"children"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// CategoryTreeNode nodo de un árbol a importar: la categoría y sus subcategorías.
type CategoryTreeNode struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Children    []CategoryTreeNode `json:"children"`
}

// Validate revisa el nodo y, recursivamente, sus hijos.
func (n CategoryTreeNode) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required, validation.Length(1, MaxCategoryNameLength)),
		validation.Field(&n.Description, validation.Length(0, MaxCategoryDescriptionLength)),
		validation.Field(&n.Children),
	)
}

// ImportResponse resultado de una importación de árbol.
type ImportResponse struct {
	Created int `json:"created"`
}
