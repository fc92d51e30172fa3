package seed_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/seed"
)

func TestLoadCategoryTree_Anidado(t *testing.T) {
	xml := `<?xml version="1.0" encoding="UTF-8"?>
<categorias>
  <categoria nombre="Electrónica" descripcion="Equipos">
    <categoria nombre="Audio">
      <categoria nombre="Audífonos"/>
    </categoria>
    <categoria nombre=" Video "/>
  </categoria>
  <categoria nombre="Hogar"/>
</categorias>`

	nodes, err := seed.LoadCategoryTree(strings.NewReader(xml))

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Electrónica", nodes[0].Name)
	assert.Equal(t, "Equipos", nodes[0].Description)
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, "Audífonos", nodes[0].Children[0].Children[0].Name)
	assert.Equal(t, "Video", nodes[0].Children[1].Name)
	assert.Empty(t, nodes[1].Children)
}

func TestLoadCategoryTree_ISO88591(t *testing.T) {
	body := `<?xml version="1.0" encoding="ISO-8859-1"?><categorias><categoria nombre="Jardín"/></categorias>`
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(body))
	require.NoError(t, err)

	nodes, err := seed.LoadCategoryTree(bytes.NewReader(encoded))

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Jardín", nodes[0].Name)
}

func TestLoadCategoryTree_Errores(t *testing.T) {
	_, err := seed.LoadCategoryTree(strings.NewReader(`<productos/>`))
	assert.Error(t, err)

	_, err = seed.LoadCategoryTree(strings.NewReader(`<categorias><categoria descripcion="sin nombre"/></categorias>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categorias/categoria[1]")

	_, err = seed.LoadCategoryTree(strings.NewReader(`<categorias><categoria`))
	assert.Error(t, err)
}
