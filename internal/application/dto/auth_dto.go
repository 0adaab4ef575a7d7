package dto

// SignupRequest entrada para registro (password en texto, se hashea en el use case).
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
	Role     string `json:"role" validate:"omitempty,oneof=admin coordinador auxiliar"`
}

// SigninRequest entrada para login: email o username, más password.
type SigninRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida con token JWT y el usuario sin password.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
