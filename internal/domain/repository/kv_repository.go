package repository

import (
	"context"
	"encoding/json"
)

// Claves persistidas. Cada backend las recibe ya con el prefijo de almacenamiento aplicado.
const (
	KeyRoles       = "roles"
	KeyUsers       = "users"
	KeyItems       = "items"
	KeySales       = "sales"
	KeyCurrentUser = "currentUser"
)

// KeyValueStore define el puerto de persistencia clave/valor (DIP).
// Los valores son JSON opacos: el backend no interpreta su contenido.
type KeyValueStore interface {
	// Get devuelve el valor y true si la clave existe; (nil, false, nil) si no existe.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
	Close() error
}
