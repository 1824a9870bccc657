package dto

// CreateUserRequest entrada para crear un usuario. RoleID no se valida contra los roles existentes.
type CreateUserRequest struct {
	Fullname string `json:"fullname" validate:"required,max=200"`
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	RoleID   string `json:"roleId"`
}

// UpdateUserRequest cambios parciales: campo nil = sin cambio.
type UpdateUserRequest struct {
	Fullname *string `json:"fullname" validate:"omitempty,min=1,max=200"`
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	RoleID   *string `json:"roleId"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}
