package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio genéricos (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// HTTPError lo implementan los errores que llevan un código de estado para la capa HTTP.
type HTTPError interface {
	error
	StatusCode() int
}

// ErrorKind identifica el tipo de fallo de una regla de la jerarquía.
type ErrorKind string

const (
	KindEntityNotFound                         ErrorKind = "ENTITY_NOT_FOUND"
	KindCyclicHierarchyDetected                ErrorKind = "CYCLIC_HIERARCHY_DETECTED"
	KindCannotDeleteNonLeafNodes               ErrorKind = "CANNOT_DELETE_NON_LEAF_NODES"
	KindCannotDeleteCategoryAssignedToProducts ErrorKind = "CANNOT_DELETE_CATEGORY_ASSIGNED_TO_PRODUCTS"
)

// Error es un fallo tipado: tipo + código de estado + mensaje legible.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// StatusCode implementa HTTPError.
func (e *Error) StatusCode() int { return e.Status }

// Is compara por Kind, así errors.Is(err, ErrEntityNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinelas para usar con errors.Is.
var (
	ErrEntityNotFound = &Error{
		Kind: KindEntityNotFound, Status: http.StatusNotFound,
		Message: "recurso no encontrado",
	}
	ErrCyclicHierarchyDetected = &Error{
		Kind: KindCyclicHierarchyDetected, Status: http.StatusConflict,
		Message: "jerarquía cíclica detectada",
	}
	ErrCannotDeleteNonLeafNodes = &Error{
		Kind: KindCannotDeleteNonLeafNodes, Status: http.StatusConflict,
		Message: "no se pueden eliminar nodos con hijos",
	}
	ErrCannotDeleteCategoryAssignedToProducts = &Error{
		Kind: KindCannotDeleteCategoryAssignedToProducts, Status: http.StatusConflict,
		Message: "no se puede eliminar una categoría asignada a productos",
	}
)

// EntityNotFound construye un 404 para la entidad e id indicados.
func EntityNotFound(entity, id string) *Error {
	msg := fmt.Sprintf("%s no encontrada", entity)
	if id != "" {
		msg = fmt.Sprintf("%s %s no encontrada", entity, id)
	}
	return &Error{Kind: KindEntityNotFound, Status: http.StatusNotFound, Message: msg}
}

// CyclicHierarchyDetected se devuelve cuando parentID ya es descendiente de id.
func CyclicHierarchyDetected(id, parentID string) *Error {
	return &Error{
		Kind:    KindCyclicHierarchyDetected,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("asignar %s como padre de %s crea un ciclo", parentID, id),
	}
}

// CannotDeleteNonLeafNodes: el nodo tiene hijos.
func CannotDeleteNonLeafNodes(id string, children int) *Error {
	return &Error{
		Kind:    KindCannotDeleteNonLeafNodes,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("la categoría %s tiene %d subcategorías", id, children),
	}
}

// CannotDeleteCategoryAssignedToProducts: hay productos asignados a la categoría.
func CannotDeleteCategoryAssignedToProducts(id string, products int64) *Error {
	return &Error{
		Kind:    KindCannotDeleteCategoryAssignedToProducts,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("la categoría %s tiene %d productos asignados", id, products),
	}
}
