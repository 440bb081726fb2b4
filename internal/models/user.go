package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// for registration
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=255"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

type GoogleAuthRequest struct {
	GoogleToken string `json:"googleToken" validate:"required"`
}

// AuthResponse is returned by signup/login and, partially filled, by the role and menu lookups.
type AuthResponse struct {
	AccessToken string   `json:"accessToken,omitempty"`
	Items       []string `json:"items,omitempty"`
	Role        Role     `json:"role,omitempty"`
}

// JWT claims structure, the subject carries the user's email
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
