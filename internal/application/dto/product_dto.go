package dto

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto.
type ProductRequest struct {
	ID          string          `json:"id"`
	CategoryID  *string         `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

var errNegativePrice = errors.New("no puede ser negativo")

// Validate revisa la forma del request.
func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxCategoryNameLength)),
		validation.Field(&r.Description, validation.Length(0, MaxCategoryDescriptionLength)),
		validation.Field(&r.CategoryID, validation.NilOrNotEmpty),
		validation.Field(&r.Price, validation.By(func(v interface{}) error {
			if p, ok := v.(decimal.Decimal); ok && p.IsNegative() {
				return errNegativePrice
			}
			return nil
		})),
		validation.Field(&r.Currency, validation.Required, is.CurrencyCode),
	)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string               `json:"id"`
	CategoryID  *string              `json:"category_id"`
	Category    *CategoryRefResponse `json:"category"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       decimal.Decimal      `json:"price"`
	Currency    string               `json:"currency"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
