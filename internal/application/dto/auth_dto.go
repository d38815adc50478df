package dto

import "time"

// RegisterRequest entrada para registro: email, password y nombre completo.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,max=200"`
}

// RegisterResponse salida del registro. Con la política OTP activa no hay
// token todavía: PendingOTP indica que falta verificar el código enviado.
type RegisterResponse struct {
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	PendingOTP bool   `json:"pendingOtp"`
	Message    string `json:"message"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse salida del login: o un token inmediato, o verificación OTP pendiente.
type LoginResponse struct {
	PendingOTP bool           `json:"pendingOtp"`
	Message    string         `json:"message,omitempty"`
	Token      *TokenResponse `json:"session,omitempty"`
}

// VerifyOTPRequest entrada para verificar el código OTP de registro o login.
type VerifyOTPRequest struct {
	Email      string `json:"email" validate:"required,email"`
	OTP        string `json:"otp" validate:"required,len=6"`
	RememberMe bool   `json:"rememberMe"`
}

// TokenResponse credencial de sesión emitida.
type TokenResponse struct {
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Expiration time.Time `json:"expiration"`
}

// ForgotPasswordRequest entrada para solicitar el enlace de restablecimiento.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest entrada para consumir el token de restablecimiento.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ChangePasswordRequest entrada para cambio de password autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UpdateProfileRequest entrada para mutación de perfil.
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
}

// ProfileResponse perfil del usuario autenticado (sin password).
type ProfileResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	EmailConfirmed bool   `json:"emailConfirmed"`
}
