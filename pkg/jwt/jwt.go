package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El claim canónico de identidad es UserID: todos los caminos de emisión pasan
// por Issue, así que los consumidores resuelven al usuario solo por user_id.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Issuer emite tokens de sesión firmados con HS256. No guarda estado de sesión:
// la validez se decide solo por firma y expiración al verificar.
type Issuer struct {
	secret        string
	issuer        string
	audience      string
	exp           time.Duration
	rememberMeExp time.Duration
}

// NewIssuer construye el emisor. El secret es obligatorio: jamás se usa una
// clave por defecto, su ausencia es un error de configuración fatal.
func NewIssuer(secret, issuer, audience string, expMinutes, rememberMeExpMinutes int) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Issuer{
		secret:        secret,
		issuer:        issuer,
		audience:      audience,
		exp:           time.Duration(expMinutes) * time.Minute,
		rememberMeExp: time.Duration(rememberMeExpMinutes) * time.Minute,
	}, nil
}

// Issue genera un token firmado para el usuario. La expiración es de dos niveles:
// rememberMe = true usa la duración larga configurada, si no la corta.
// Devuelve el token y el instante de expiración embebido.
func (i *Issuer) Issue(userID, email, fullName string, rememberMe bool) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(i.exp)
	if rememberMe {
		exp = now.Add(i.rememberMeExp)
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:   userID,
		FullName: fullName,
		Email:    email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
