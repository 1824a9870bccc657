package entity

// Permission capacidad atómica que un Role puede otorgar. Enumeración cerrada.
type Permission string

// Permisos válidos. Los valores son los que se persisten.
const (
	PermissionManageUsers   Permission = "manage_users"
	PermissionManageRoles   Permission = "manage_roles"
	PermissionManageItems   Permission = "manage_items"
	PermissionManageSales   Permission = "manage_sales"
	PermissionViewDashboard Permission = "view_dashboard"
)

// AllPermissions devuelve todos los permisos en orden de declaración.
func AllPermissions() []Permission {
	return []Permission{
		PermissionManageUsers,
		PermissionManageRoles,
		PermissionManageItems,
		PermissionManageSales,
		PermissionViewDashboard,
	}
}

// Valid informa si p pertenece a la enumeración.
func (p Permission) Valid() bool {
	switch p {
	case PermissionManageUsers, PermissionManageRoles, PermissionManageItems, PermissionManageSales, PermissionViewDashboard:
		return true
	}
	return false
}

// NormalizePermissions elimina duplicados conservando el primer orden de aparición.
func NormalizePermissions(perms []Permission) []Permission {
	out := make([]Permission, 0, len(perms))
	seen := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
