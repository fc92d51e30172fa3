package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo asignado a una categoría.
// Category es la vista resuelta de CategoryID; el store persiste Category.ID.
type Product struct {
	ID          string
	CategoryID  string
	Category    *Category
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string // ISO 4217, ej. EUR
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssignCategory fija la categoría resuelta y sincroniza CategoryID.
func (p *Product) AssignCategory(c *Category) {
	p.Category = c
	if c == nil {
		p.CategoryID = ""
		return
	}
	p.CategoryID = c.ID
}
