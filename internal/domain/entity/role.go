package entity

import (
	"slices"
	"time"
)

// Nombres de los roles semilla; nunca se pueden eliminar (comparación sin mayúsculas).
const (
	RoleAdmin       = "admin"
	RoleSupervisor  = "supervisor"
	RoleSalesperson = "salesperson"
)

// Role agrupa un conjunto de permisos bajo un nombre único.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	CreatedAt   time.Time    `json:"createdAt"`
	Permissions []Permission `json:"permissions"`
}

// IsSeedRoleName informa si name corresponde a uno de los tres roles semilla.
func IsSeedRoleName(name string) bool {
	switch FoldKey(name) {
	case RoleAdmin, RoleSupervisor, RoleSalesperson:
		return true
	}
	return false
}

// HasPermission informa si el rol otorga p.
func (r Role) HasPermission(p Permission) bool {
	for _, rp := range r.Permissions {
		if rp == p {
			return true
		}
	}
	return false
}

// Clone copia el rol sin compartir el slice de permisos.
func (r Role) Clone() Role {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}
