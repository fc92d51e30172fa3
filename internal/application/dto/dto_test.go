package dto_test

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func TestCategoryRequest_Validate(t *testing.T) {
	empty := ""
	parent := "c-1"

	assert.NoError(t, dto.CategoryRequest{Name: "Audio"}.Validate())
	assert.NoError(t, dto.CategoryRequest{Name: "Audio", ParentID: &parent}.Validate())

	err := dto.CategoryRequest{}.Validate()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "name")

	err = dto.CategoryRequest{Name: "Audio", ParentID: &empty}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.(validation.Errors), "parent_id")

	err = dto.CategoryRequest{Name: strings.Repeat("x", dto.MaxCategoryNameLength+1)}.Validate()
	assert.Error(t, err)
}

func TestCategoryTreeNode_ValidaHijos(t *testing.T) {
	ok := dto.CategoryTreeNode{Name: "Electrónica", Children: []dto.CategoryTreeNode{{Name: "Audio"}}}
	assert.NoError(t, ok.Validate())

	bad := dto.CategoryTreeNode{Name: "Electrónica", Children: []dto.CategoryTreeNode{{Name: ""}}}
	assert.Error(t, bad.Validate())
}

func TestProductRequest_Validate(t *testing.T) {
	valid := dto.ProductRequest{Name: "Audífonos", Price: decimal.RequireFromString("10.50"), Currency: "EUR"}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.Price = decimal.NewFromInt(-1)
	assert.Error(t, negative.Validate())

	badCurrency := valid
	badCurrency.Currency = "XXQ"
	assert.Error(t, badCurrency.Validate())

	noCurrency := valid
	noCurrency.Currency = ""
	assert.Error(t, noCurrency.Validate())
}
