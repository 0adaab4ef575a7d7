package dto

import "time"

// UserResponse salida de un usuario (sin password, nunca).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUserRequest actualización parcial de un usuario. Password en texto
// plano: solo se re-hashea si viene presente.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// UserDeleteResponse indica el modo aplicado al usuario.
type UserDeleteResponse struct {
	Hard bool         `json:"hard"`
	User UserResponse `json:"user"`
}
