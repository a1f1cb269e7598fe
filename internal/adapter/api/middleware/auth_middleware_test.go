package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	t.Run("returns the subject of a valid token", func(t *testing.T) {
		req := require.New(t)
		token := signTestToken(t, testSecret, "user-1", time.Hour)

		uid, err := m.VerifyToken(token)

		req.NoError(err)
		req.Equal("user-1", uid)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		req := require.New(t)
		token := signTestToken(t, "other-secret", "user-1", time.Hour)

		_, err := m.VerifyToken(token)

		req.Error(err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		req := require.New(t)
		token := signTestToken(t, testSecret, "user-1", -time.Minute)

		_, err := m.VerifyToken(token)

		req.Error(err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		req := require.New(t)

		_, err := m.VerifyToken("not-a-token")

		req.Error(err)
	})
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("uid").(string))
	})

	call := func(authHeader string) (*httptest.ResponseRecorder, error) {
		e := echo.New()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			r.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(r, rec))
	}

	t.Run("puts the user id on the context", func(t *testing.T) {
		req := require.New(t)
		token := signTestToken(t, testSecret, "user-1", time.Hour)

		rec, err := call("Bearer " + token)

		req.NoError(err)
		req.Equal("user-1", rec.Body.String())
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := require.New(t)

		_, err := call("")

		var httpErr *echo.HTTPError
		req.ErrorAs(err, &httpErr)
		req.Equal(http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		req := require.New(t)

		_, err := call("Token abc")

		var httpErr *echo.HTTPError
		req.ErrorAs(err, &httpErr)
		req.Equal(http.StatusUnauthorized, httpErr.Code)
	})
}
