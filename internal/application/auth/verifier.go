package auth

import "github.com/jhoicas/Inventario-admin/internal/domain/entity"

// CredentialVerifier punto único de verificación de credenciales.
type CredentialVerifier interface {
	Verify(user entity.User, password string) bool
}

// DemoVerifier acepta cualquier contraseña no vacía para el usuario encontrado.
// No hay credenciales almacenadas: sustituir por un verificador real cuando existan.
type DemoVerifier struct{}

func (DemoVerifier) Verify(_ entity.User, password string) bool {
	return password != ""
}
