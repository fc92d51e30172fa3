package entity

import "time"

// Category representa un nodo del árbol de categorías de productos.
// ParentID es el padre solicitado por el llamador (entrada) y, tras leer del store, el padre persistido.
// Parent y Children son vistas de un nivel resueltas por id; el store persiste Parent.ID, no ParentID.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string // vacío si es raíz
	Parent      *Category
	Children    []*Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot indica si la categoría no tiene padre resuelto ni solicitado.
func (c *Category) IsRoot() bool {
	return c.Parent == nil && c.ParentID == ""
}

// IsLeaf indica si la categoría no tiene hijos.
func (c *Category) IsLeaf() bool {
	return len(c.Children) == 0
}

// AttachParent fija el padre resuelto y sincroniza ParentID. nil la convierte en raíz.
func (c *Category) AttachParent(parent *Category) {
	c.Parent = parent
	if parent == nil {
		c.ParentID = ""
		return
	}
	c.ParentID = parent.ID
}
