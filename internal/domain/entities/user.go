package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// AuthProvider tags how an account authenticates
type AuthProvider string

const (
	ProviderCredentials AuthProvider = "credentials"
	ProviderGoogle      AuthProvider = "google"
)

// User represents a storefront account
type User struct {
	ID              uuid.UUID    `json:"id"`
	Email           string       `json:"email"`
	Name            string       `json:"name"`
	PasswordHash    string       `json:"-"`
	Provider        AuthProvider `json:"provider"`
	Role            UserRole     `json:"role"`
	ResetCode       null.String  `json:"-"`
	ResetCodeExpiry null.Time    `json:"-"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// SignupInput represents input for creating a credentials account
type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response. Redirect hints the client
// where to land after login ("/dashboard" for admins, "/" otherwise).
type AuthResponse struct {
	Token    string   `json:"token"`
	Role     UserRole `json:"role"`
	Redirect string   `json:"redirect"`
	User     *User    `json:"user,omitempty"`
}

// ForgotPasswordInput requests a reset code by email
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeInput checks a reset code
type VerifyCodeInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResetPasswordInput completes the forgot-password flow
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
