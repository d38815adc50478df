package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
	"github.com/jhoicas/hrms-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, full_name, password_hash, email_confirmed, otp, otp_expires_at, created_at, updated_at`

// UserRepo implementación del Secret Store sobre PostgreSQL. Posee el hash
// bcrypt de los passwords y los tokens de restablecimiento; el resto de la
// aplicación nunca ve un hash.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario hasheando el password con bcrypt.
func (r *UserRepo) Create(ctx context.Context, user *entity.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	query := `
		INSERT INTO users (id, email, full_name, password_hash, email_confirmed, otp, otp_expires_at, created_at, updated_at)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.pool.Exec(ctx, query,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.EmailConfirmed,
		user.OTP, user.OTPExpiresAt, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail busca por email sin distinguir mayúsculas. (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	return r.scanOne(ctx, query, email)
}

// FindByID busca por id. (nil, nil) si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *UserRepo) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.EmailConfirmed,
		&u.OTP, &u.OTPExpiresAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update persiste nombre, flag de confirmación y la pareja OTP/expiración.
// Última escritura gana: regenerar un OTP pisa al pendiente.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, email_confirmed = $3, otp = $4, otp_expires_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.FullName, user.EmailConfirmed, user.OTP, user.OTPExpiresAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ConsumeOTP compara y limpia la pareja OTP en un solo UPDATE condicional:
// la comparación, la expiración y la limpieza son atómicas frente a intentos
// de verificación o regeneraciones concurrentes para el mismo usuario.
func (r *UserRepo) ConsumeOTP(ctx context.Context, id, otp string, confirm bool) (bool, error) {
	query := `
		UPDATE users
		SET otp = NULL, otp_expires_at = NULL,
		    email_confirmed = (email_confirmed OR $3),
		    updated_at = now()
		WHERE id = $1 AND otp = $2 AND otp_expires_at > now()`
	tag, err := r.pool.Exec(ctx, query, id, otp, confirm)
	if err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// VerifyPassword compara el password plano contra el hash almacenado.
func (r *UserRepo) VerifyPassword(ctx context.Context, id, password string) (bool, error) {
	var hash string
	err := r.pool.QueryRow(ctx, `SELECT password_hash FROM users WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get password hash: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// ChangePassword reemplaza el hash por el del password nuevo.
func (r *UserRepo) ChangePassword(ctx context.Context, id, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, string(hash),
	)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// IssueResetToken emite un token de un solo uso, invalidando los anteriores
// del usuario.
func (r *UserRepo) IssueResetToken(ctx context.Context, id string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE password_reset_tokens SET consumed_at = now() WHERE user_id = $1 AND consumed_at IS NULL`,
		id,
	); err != nil {
		return "", fmt.Errorf("invalidate reset tokens: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO password_reset_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, id, time.Now().Add(ttl),
	); err != nil {
		return "", fmt.Errorf("insert reset token: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}
	return token, nil
}

// ConsumeResetToken valida y consume el token y reemplaza el hash, todo en la
// misma transacción. Un token inválido, expirado o ya usado retorna
// domain.ErrInvalidResetToken.
func (r *UserRepo) ConsumeResetToken(ctx context.Context, id, token, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE password_reset_tokens SET consumed_at = now()
		WHERE token = $1 AND user_id = $2 AND expires_at > now() AND consumed_at IS NULL`,
		token, id,
	)
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return domain.ErrInvalidResetToken
	}
	if _, err := tx.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, string(hash),
	); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
