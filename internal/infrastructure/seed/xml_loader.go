// Package seed lee árboles de categorías desde XML para la carga inicial del catálogo.
//
// Formato:
//
//	<categorias>
//	  <categoria nombre="Electrónica" descripcion="...">
//	    <categoria nombre="Audio"/>
//	  </categoria>
//	</categorias>
package seed

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

const (
	rootTag     = "categorias"
	categoryTag = "categoria"
)

// LoadCategoryTree parsea el XML y devuelve los nodos raíz. Acepta UTF-8 e ISO-8859-1.
func LoadCategoryTree(r io.Reader) ([]dto.CategoryTreeNode, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("leer XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("XML sin elemento raíz")
	}
	if root.Tag != rootTag {
		return nil, fmt.Errorf("elemento raíz %q, se esperaba %q", root.Tag, rootTag)
	}
	return readChildren(root, root.Tag)
}

func readChildren(el *etree.Element, path string) ([]dto.CategoryTreeNode, error) {
	var nodes []dto.CategoryTreeNode
	for i, child := range el.SelectElements(categoryTag) {
		name := strings.TrimSpace(child.SelectAttrValue("nombre", ""))
		where := fmt.Sprintf("%s/%s[%d]", path, categoryTag, i+1)
		if name == "" {
			return nil, fmt.Errorf("%s: atributo nombre vacío", where)
		}
		children, err := readChildren(child, where)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, dto.CategoryTreeNode{
			Name:        name,
			Description: strings.TrimSpace(child.SelectAttrValue("descripcion", "")),
			Children:    children,
		})
	}
	return nodes, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	}
	return input, nil
}
