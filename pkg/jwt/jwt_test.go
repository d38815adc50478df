package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/hrms-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "hrms-api-test"
	testAudience = "hrms-clients-test"
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testEmail    = "ana@ejemplo.com"
	testName     = "Ana Pérez"
)

func newTestIssuer(t *testing.T) *pkgjwt.Issuer {
	t.Helper()
	iss, err := pkgjwt.NewIssuer(testSecret, testIssuer, testAudience, 30, 10080)
	require.NoError(t, err)
	return iss
}

func TestIssuer_SecretVacio_RetornaError(t *testing.T) {
	// La clave jamás se defaultea: su ausencia es error de construcción.
	_, err := pkgjwt.NewIssuer("", testIssuer, testAudience, 30, 10080)
	assert.Error(t, err)
}

func TestIssuer_IssueAndParse(t *testing.T) {
	iss := newTestIssuer(t)

	tok, exp, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.True(t, exp.After(time.Now()), "la expiración debe estar en el futuro")

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testName, claims.FullName)
	assert.Equal(t, testEmail, claims.Subject, "sub debe ser el email")
	assert.NotEmpty(t, claims.ID, "jti debe ser un UUID aleatorio")
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestIssuer_JtiUnicoPorToken(t *testing.T) {
	iss := newTestIssuer(t)

	tok1, _, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)
	tok2, _, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)

	c1, err := pkgjwt.Parse(testSecret, tok1)
	require.NoError(t, err)
	c2, err := pkgjwt.Parse(testSecret, tok2)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

// La expiración con rememberMe debe ser estrictamente posterior a la normal
// para el mismo instante.
func TestIssuer_RememberMe_ExpiraMasTarde(t *testing.T) {
	iss := newTestIssuer(t)

	_, expShort, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)
	_, expLong, err := iss.Issue(testUserID, testEmail, testName, true)
	require.NoError(t, err)

	assert.True(t, expLong.After(expShort),
		"rememberMe=true debe expirar estrictamente después que rememberMe=false")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	iss, err := pkgjwt.NewIssuer(testSecret, testIssuer, testAudience, -1, 10080)
	require.NoError(t, err)

	tok, _, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	iss := newTestIssuer(t)
	tok, _, err := iss.Issue(testUserID, testEmail, testName, false)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
