package domain

import "errors"

// Categorías de error (sin dependencias externas). Los handlers deciden el código HTTP
// a partir de la categoría con errors.Is, nunca a partir del texto.
var (
	ErrValidation      = errors.New("entrada inválida")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrStateConflict   = errors.New("conflicto con el estado actual")
	ErrExternalService = errors.New("fallo del servicio externo")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)

// categorizedError es un error concreto que pertenece a una categoría.
type categorizedError struct {
	category error
	msg      string
}

func (e *categorizedError) Error() string { return e.msg }
func (e *categorizedError) Unwrap() error { return e.category }

func newError(category error, msg string) error {
	return &categorizedError{category: category, msg: msg}
}

// Errores de validación.
var (
	ErrInvalidRequest     = newError(ErrValidation, "solicitud inválida: falta nombre del cliente o producto")
	ErrDuplicateCode      = newError(ErrValidation, "el código de producto ya está registrado")
	ErrEmailAlreadyExists = newError(ErrValidation, "el email ya está registrado")
	ErrInvalidSnapshot    = newError(ErrValidation, "formato de backup inválido o dañado")
)

// Referencias que no se pueden resolver.
var (
	ErrProductNotFound = newError(ErrNotFound, "producto no encontrado")
	ErrStoreNotFound   = newError(ErrNotFound, "tienda no encontrada")
	ErrUserNotFound    = newError(ErrNotFound, "usuario no encontrado")
)

// Conflictos de estado del catálogo.
var (
	ErrOutOfStock      = newError(ErrStateConflict, "stock agotado")
	ErrInactiveProduct = newError(ErrStateConflict, "producto inactivo")
)

// Fallos del adaptador de extracción de texto.
var (
	ErrExtractionFailed      = newError(ErrExternalService, "formato de mensaje no reconocido")
	ErrExtractionUnavailable = newError(ErrExternalService, "servicio de extracción no disponible")
	ErrArchiveUnavailable    = newError(ErrExternalService, "archivo de backups no configurado")
)

// Autenticación y permisos.
var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "email o password incorrectos")
	ErrSessionClosed      = newError(ErrUnauthorized, "sesión cerrada o expirada")
	ErrRoleNotAssignable  = newError(ErrForbidden, "el rol no puede ser asignado por este usuario")
	ErrActionForbidden    = newError(ErrForbidden, "el rol no permite esta operación")
)
