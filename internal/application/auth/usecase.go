package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hrms-api/internal/application/dto"
	"github.com/jhoicas/hrms-api/internal/domain"
	"github.com/jhoicas/hrms-api/internal/domain/entity"
	"github.com/jhoicas/hrms-api/internal/domain/repository"
	"github.com/jhoicas/hrms-api/pkg/jwt"
)

// Policy parametriza el flujo de credenciales por despliegue.
type Policy struct {
	OTPRequired bool          // registro y login exigen verificación por código
	OTPTTL      time.Duration // vigencia del OTP (pareja valor+expiración)
	ResetTTL    time.Duration // vigencia del token de reset
	FrontendURL string        // base del enlace de reset
}

// AuthUseCase orquesta registro, login, verificación OTP, reset de password y
// mutaciones de perfil. Habla con el Secret Store, el Notifier y el emisor de
// tokens solo por sus puertos inyectados.
type AuthUseCase struct {
	users    repository.UserRepository
	notifier Notifier
	issuer   *jwt.Issuer
	policy   Policy
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, notifier Notifier, issuer *jwt.Issuer, policy Policy) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		notifier: notifier,
		issuer:   issuer,
		policy:   policy,
		now:      time.Now,
	}
}

// Register crea la cuenta. Devuelve domain.ErrEmailAlreadyExists si el email ya
// existe. Con la política OTP activa genera y envía un código de 6 dígitos y
// responde con verificación pendiente; si no, la cuenta queda lista y el
// llamador debe hacer login aparte (no se emite token aquí).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := normalizeEmail(in.Email)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := uc.now()
	user := &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  in.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.users.Create(ctx, user, in.Password); err != nil {
		return nil, err
	}

	if !uc.policy.OTPRequired {
		return &dto.RegisterResponse{
			Email:    user.Email,
			FullName: user.FullName,
			Message:  "usuario registrado; inicie sesión para obtener un token",
		}, nil
	}

	if err := uc.dispatchOTP(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Email:      user.Email,
		FullName:   user.FullName,
		PendingOTP: true,
		Message:    "código de verificación enviado al correo",
	}, nil
}

// VerifyRegisterOTP valida el código de registro. En éxito limpia la pareja
// OTP y marca la cuenta como confirmada, todo en un paso atómico del store.
func (uc *AuthUseCase) VerifyRegisterOTP(ctx context.Context, in dto.VerifyOTPRequest) error {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	ok, err := uc.users.ConsumeOTP(ctx, user.ID, in.OTP, true)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidOTP
	}
	return nil
}

// Login verifica credenciales. Usuario inexistente y password incorrecto
// retornan el mismo domain.ErrUnauthorized para no filtrar qué cuentas
// existen. Con la política OTP activa envía un código fresco (pisa cualquier
// pendiente) en lugar de emitir token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	ok, err := uc.users.VerifyPassword(ctx, user.ID, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if uc.policy.OTPRequired {
		if err := uc.dispatchOTP(ctx, user); err != nil {
			return nil, err
		}
		return &dto.LoginResponse{
			PendingOTP: true,
			Message:    "código de verificación enviado al correo",
		}, nil
	}

	token, err := uc.issueToken(user, in.RememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// VerifyLoginOTP valida el código del login y emite el token de sesión con la
// expiración seleccionada por rememberMe.
func (uc *AuthUseCase) VerifyLoginOTP(ctx context.Context, in dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ok, err := uc.users.ConsumeOTP(ctx, user.ID, in.OTP, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidOTP
	}
	return uc.issueToken(user, in.RememberMe)
}

// ForgotPassword emite un token de reset de un solo uso y envía el enlace por
// correo con token y email escapados en la URL. Email desconocido retorna
// domain.ErrUserNotFound (comportamiento de referencia; una variante
// anti-enumeración respondería éxito incondicional).
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	token, err := uc.users.IssueResetToken(ctx, user.ID, uc.policy.ResetTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimRight(uc.policy.FrontendURL, "/"),
		url.QueryEscape(token),
		url.QueryEscape(user.Email),
	)
	body := fmt.Sprintf(`<p>Haga clic para restablecer su password: <a href="%s">Restablecer password</a></p>`, link)
	return uc.notifier.Send(ctx, user.Email, "Restablecimiento de password", body)
}

// ResetPassword consume el token de reset y reemplaza el hash.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidRequest
	}
	return uc.users.ConsumeResetToken(ctx, user.ID, in.Token, in.NewPassword)
}

// ChangePassword reemplaza el password de un usuario autenticado previa
// verificación del actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	ok, err := uc.users.VerifyPassword(ctx, user.ID, in.OldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return uc.users.ChangePassword(ctx, user.ID, in.NewPassword)
}

// GetProfile resuelve al usuario por el claim canónico user_id del token.
func (uc *AuthUseCase) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toProfileResponse(user), nil
}

// UpdateProfile muta el nombre del usuario autenticado.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.FullName = in.FullName
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

// dispatchOTP genera un código de 6 dígitos, lo guarda con su expiración
// (pisando cualquier pendiente) y lo despacha por correo. Una falla de entrega
// se propaga: el llamador debe saber que el código pudo no llegar.
func (uc *AuthUseCase) dispatchOTP(ctx context.Context, user *entity.User) error {
	otp, err := generateOTP()
	if err != nil {
		return err
	}
	expires := uc.now().Add(uc.policy.OTPTTL)
	user.OTP = &otp
	user.OTPExpiresAt = &expires
	user.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	body := fmt.Sprintf("<p>Su código de verificación es: <b>%s</b></p><p>Expira en %d minutos.</p>",
		otp, int(uc.policy.OTPTTL.Minutes()))
	return uc.notifier.Send(ctx, user.Email, "Código de verificación", body)
}

func (uc *AuthUseCase) issueToken(user *entity.User, rememberMe bool) (*dto.TokenResponse, error) {
	token, expiresAt, err := uc.issuer.Issue(user.ID, user.Email, user.FullName, rememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:      token,
		Email:      user.Email,
		FullName:   user.FullName,
		Expiration: expiresAt,
	}, nil
}

func toProfileResponse(u *entity.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		EmailConfirmed: u.EmailConfirmed,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOTP produce un código numérico de 6 dígitos con crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
