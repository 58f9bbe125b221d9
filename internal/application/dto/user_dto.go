package dto

import "time"

// CreateUserRequest entrada para crear un usuario. Password vacío asigna la credencial por defecto.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=40"`
	Role     string `json:"role" validate:"required,oneof=SUPERADMIN OWNER ADMIN SALES"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión y usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
	Areas     []string     `json:"areas"`
}

// SessionResponse usuario de la sesión actual con sus áreas permitidas.
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Areas []string     `json:"areas"`
}
