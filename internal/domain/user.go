package domain

import "time"

const (
	RoleDiner = "diner"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         string
	PasswordHash []byte
	CreatedAt    time.Time
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserRole struct {
	Role string `json:"role"`
}

type UserResponse struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Roles []UserRole `json:"roles,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
