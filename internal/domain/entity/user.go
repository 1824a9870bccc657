package entity

import "time"

// BootstrapAdminUsername usuario administrador inicial; no se puede eliminar.
const BootstrapAdminUsername = "admin_user"

// User representa un usuario del sistema. RoleID puede quedar colgando: se interpreta como "sin rol".
type User struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    string    `json:"roleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
