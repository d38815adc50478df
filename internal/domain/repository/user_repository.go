package repository

import (
	"context"
	"time"

	"github.com/jhoicas/hrms-api/internal/domain/entity"
)

// UserRepository es el puerto hacia el Secret Store: el componente que posee
// los hashes de password y el estado de las cuentas. El motor de credenciales
// solo habla a través de este contrato, nunca por acceso ambiente.
type UserRepository interface {
	// Create persiste un usuario nuevo hasheando el password.
	// Retorna domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User, password string) error

	// FindByEmail busca por email sin distinguir mayúsculas. (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID busca por id. (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Update persiste nombre, flag de confirmación y la pareja OTP/expiración.
	Update(ctx context.Context, user *entity.User) error

	// ConsumeOTP compara y limpia la pareja OTP de forma atómica: solo tiene
	// éxito si el código coincide y no ha expirado, y en el mismo paso la
	// limpia (y marca la cuenta confirmada si confirm es true). Devuelve false
	// si el código no coincide, ya fue consumido o expiró.
	ConsumeOTP(ctx context.Context, id, otp string, confirm bool) (bool, error)

	// VerifyPassword compara el password plano contra el hash almacenado.
	VerifyPassword(ctx context.Context, id, password string) (bool, error)

	// ChangePassword reemplaza el hash por el del password nuevo.
	ChangePassword(ctx context.Context, id, newPassword string) error

	// IssueResetToken emite un token de restablecimiento de un solo uso con la
	// vigencia dada, invalidando los anteriores del usuario.
	IssueResetToken(ctx context.Context, id string, ttl time.Duration) (string, error)

	// ConsumeResetToken valida y consume el token, reemplazando el password.
	// Retorna domain.ErrInvalidResetToken si es inválido, expirado o ya usado.
	ConsumeResetToken(ctx context.Context, id, token, newPassword string) error
}
