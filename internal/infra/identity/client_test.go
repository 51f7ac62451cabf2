package identity

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

func newVerifier(t *testing.T, baseURL string) service.IdentityVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.Identity.BaseURL = baseURL
	cfg.Identity.VerifyTimeout = 5 * time.Second

	verifier, err := NewHTTPVerifier(cfg, slog.Default())
	require.NoError(t, err)

	return verifier
}

func mintUpstreamToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-key"))
	require.NoError(t, err)

	return signed
}

func TestHTTPVerifier_Success(t *testing.T) {
	now := time.Now()
	accessToken := mintUpstreamToken(t, jwt.MapClaims{
		"sub":   "123",
		"email": "u@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"` + accessToken + `","refreshToken":"refresh-token"}`))
	}))
	defer srv.Close()

	verifier := newVerifier(t, srv.URL)

	claims, pair, err := verifier.Verify(context.Background(), entity.Credentials{Email: "u@example.com", Password: "correct"})
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.NotNil(t, pair)
	assert.Equal(t, "123", claims.SubjectID)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, accessToken, pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}

func TestHTTPVerifier_EmptyCredentials(t *testing.T) {
	verifier := newVerifier(t, "http://identity.invalid")

	for _, tc := range []struct {
		name, email, password string
	}{
		{"empty email", "", "secret"},
		{"empty password", "u@example.com", ""},
		{"both empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			claims, pair, err := verifier.Verify(context.Background(), entity.Credentials{Email: tc.email, Password: tc.password})
			assert.Nil(t, claims)
			assert.Nil(t, pair)
			assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
		})
	}
}

func TestHTTPVerifier_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_credentials"}`))
	}))
	defer srv.Close()

	verifier := newVerifier(t, srv.URL)

	claims, pair, err := verifier.Verify(context.Background(), entity.Credentials{Email: "u@example.com", Password: "wrong"})
	assert.Nil(t, claims)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestHTTPVerifier_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Nothing is listening anymore.

	verifier := newVerifier(t, srv.URL)

	claims, pair, err := verifier.Verify(context.Background(), entity.Credentials{Email: "u@example.com", Password: "correct"})
	assert.Nil(t, claims)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestHTTPVerifier_MalformedResponse(t *testing.T) {
	accessTokenWithoutSubject := mintUpstreamToken(t, jwt.MapClaims{
		"email": "u@example.com",
	})

	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>identity service is down</html>"},
		{"missing access token", `{"refreshToken":"refresh-token"}`},
		{"access token not a jwt", `{"accessToken":"not-a-jwt"}`},
		{"access token without subject", `{"accessToken":"` + accessTokenWithoutSubject + `"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			verifier := newVerifier(t, srv.URL)

			claims, pair, err := verifier.Verify(context.Background(), entity.Credentials{Email: "u@example.com", Password: "correct"})
			assert.Nil(t, claims)
			assert.Nil(t, pair)
			assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
		})
	}
}

func TestHTTPVerifier_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	verifier := newVerifier(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claims, pair, err := verifier.Verify(ctx, entity.Credentials{Email: "u@example.com", Password: "correct"})
	assert.Nil(t, claims)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestNewHTTPVerifier_RequiresBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Identity.VerifyTimeout = time.Second

	verifier, err := NewHTTPVerifier(cfg, slog.Default())
	assert.Nil(t, verifier)
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}
