package domain

import (
	"errors"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrTransport     = errors.New("no se pudo contactar al servidor")
	ErrInvalidForm   = errors.New("formulario inválido")
	ErrFieldLocked   = errors.New("el campo no es editable")
	ErrUnknownField  = errors.New("campo desconocido")
	ErrCodeImmutable = errors.New("el código de empleado no se puede modificar")
)

// APIError forma normalizada de cualquier fallo al hablar con la API de empleados.
// Status es 0 cuando la petición nunca llegó al servidor (red, timeout).
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// Unwrap permite usar errors.Is contra los errores de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 0:
		return ErrTransport
	case http.StatusBadRequest:
		return ErrInvalidInput
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrDuplicate
	default:
		return nil
	}
}
