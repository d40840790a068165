package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrCategoryNotFound = errors.New("la categoría referenciada no existe")
	ErrCategoryInUse    = errors.New("la categoría tiene productos asociados")

	// ErrRemote colapsa cualquier fallo de una operación remota (red, HTTP no 2xx, cuerpo inválido).
	ErrRemote = errors.New("operación remota fallida")
	// ErrSubmitInProgress se devuelve cuando el mismo formulario ya tiene un envío en curso.
	ErrSubmitInProgress = errors.New("envío en curso")
)
