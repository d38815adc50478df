package entity

import "time"

// User representa una cuenta del sistema. El hash de password lo posee el
// Secret Store (nunca viaja en DTOs). OTP y OTPExpiresAt van siempre en pareja:
// ambos con valor mientras hay una verificación pendiente, ambos nil después
// de consumirse o expirar.
type User struct {
	ID             string
	Email          string // único, normalizado a minúsculas
	FullName       string
	PasswordHash   string // bcrypt, nunca plano en dominio después de persistir
	EmailConfirmed bool
	OTP            *string
	OTPExpiresAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OTPPending indica si hay un código vigente a la hora dada.
func (u *User) OTPPending(now time.Time) bool {
	return u.OTP != nil && u.OTPExpiresAt != nil && now.Before(*u.OTPExpiresAt)
}
