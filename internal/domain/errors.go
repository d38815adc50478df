package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRequest     = errors.New("solicitud inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidOTP         = errors.New("código OTP inválido o expirado")
	ErrInvalidResetToken  = errors.New("token de restablecimiento inválido o expirado")
	ErrDeliveryFailed     = errors.New("no se pudo entregar el correo")
)
