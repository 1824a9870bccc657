package dto

import "github.com/jhoicas/Inventario-admin/internal/domain/entity"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Permissions []entity.Permission `json:"permissions" validate:"dive,permission"`
}

// UpdateRoleRequest cambios parciales: campo nil = sin cambio.
// Permissions nil no modifica; un slice vacío deja el rol sin permisos.
type UpdateRoleRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=100"`
	Permissions []entity.Permission `json:"permissions" validate:"omitempty,dive,permission"`
}
