package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrDuplicateName      = errors.New("ya existe un registro con el mismo nombre")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya está registrado")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProtectedRole      = errors.New("el rol es de sistema y no se puede eliminar")
	ErrProtectedUser      = errors.New("el usuario administrador inicial no se puede eliminar")
	ErrRoleInUse          = errors.New("el rol está asignado a usuarios")
	ErrItemNotFound       = errors.New("artículo no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrPersistence        = errors.New("no se pudo persistir el cambio")
)

// RoleInUseError indica cuántos usuarios referencian el rol que se intentó eliminar.
// errors.Is(err, ErrRoleInUse) es true.
type RoleInUseError struct {
	Count int
}

func (e *RoleInUseError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrRoleInUse.Error(), e.Count)
}

// Is permite comparar contra ErrRoleInUse.
func (e *RoleInUseError) Is(target error) bool {
	return target == ErrRoleInUse
}

// InsufficientStockError detalla el stock disponible frente a la cantidad solicitada.
type InsufficientStockError struct {
	ItemID    string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: solicitado %d, disponible %d", ErrInsufficientStock.Error(), e.Requested, e.Available)
}

// Is permite comparar contra ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// codes relaciona cada error de dominio con su código estable (mismo formato que dto.ErrorResponse.Code).
var codes = []struct {
	err  error
	code string
}{
	{ErrDuplicateName, "DUPLICATE_NAME"},
	{ErrDuplicateUsername, "DUPLICATE_USERNAME"},
	{ErrDuplicateEmail, "DUPLICATE_EMAIL"},
	{ErrNotFound, "NOT_FOUND"},
	{ErrProtectedRole, "PROTECTED_ROLE"},
	{ErrProtectedUser, "PROTECTED_USER"},
	{ErrRoleInUse, "ROLE_IN_USE"},
	{ErrItemNotFound, "ITEM_NOT_FOUND"},
	{ErrInsufficientStock, "INSUFFICIENT_STOCK"},
	{ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{ErrInvalidInput, "VALIDATION"},
	{ErrPersistence, "PERSISTENCE"},
}

// Code devuelve el código estable del error de dominio, "INTERNAL" si no es uno conocido y "" si err es nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "INTERNAL"
}
