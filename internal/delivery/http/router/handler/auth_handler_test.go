package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/delivery/http/session"
	"gatekeeper/internal/delivery/http/validator"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	mockservice "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase/impl"
)

type authHandlerFixture struct {
	handler      *AuthHandler
	verifier     *mockservice.MockIdentityVerifier
	tokenService *mockservice.MockTokenService
	echo         *echo.Echo
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()

	verifier := mockservice.NewMockIdentityVerifier(t)
	tokenService := mockservice.NewMockTokenService(t)

	uc := impl.NewAuthService(impl.AuthServiceParams{
		Verifier:     verifier,
		TokenService: tokenService,
		Logger:       slog.Default(),
	})

	cfg := &config.Config{}
	cfg.Session.CookieName = "gatekeeper_session"
	cfg.Session.MaxAge = time.Hour

	e := echo.New()
	e.Validator = validator.New()

	return &authHandlerFixture{
		handler:      NewAuthHandler(uc, session.NewStore(cfg), slog.Default()),
		verifier:     verifier,
		tokenService: tokenService,
		echo:         e,
	}
}

func (f *authHandlerFixture) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "gatekeeper_session" {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthHandlerFixture(t)

	claims := &entity.IdentityClaims{SubjectID: "123", Email: "u@example.com", IssuedAt: time.Now()}
	pair := &entity.TokenPair{AccessToken: "upstream-access", RefreshToken: "upstream-refresh"}

	f.verifier.EXPECT().Verify(mock.Anything, entity.Credentials{Email: "u@example.com", Password: "correct"}).Return(claims, pair, nil)
	f.tokenService.EXPECT().Issue(claims, pair).Return("signed-session-token", nil)

	c, rec := f.jsonContext(http.MethodPost, "/auth/login", `{"email":"u@example.com","password":"correct"}`)

	require.NoError(t, f.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subjectId":"123"`)
	assert.Contains(t, rec.Body.String(), `"email":"u@example.com"`)

	// The token pair stays inside the signed cookie, never in the body.
	assert.NotContains(t, rec.Body.String(), "upstream-access")
	assert.NotContains(t, rec.Body.String(), "upstream-refresh")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_LoginRejectedCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.verifier.EXPECT().Verify(mock.Anything, entity.Credentials{Email: "u@example.com", Password: "wrong"}).
		Return(nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("rejected"))

	c, rec := f.jsonContext(http.MethodPost, "/auth/login", `{"email":"u@example.com","password":"wrong"}`)

	err := f.handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)

	// A failed login must never leave a cookie behind.
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"correct"}`},
		{"missing password", `{"email":"u@example.com"}`},
		{"malformed email", `{"email":"not-an-email","password":"correct"}`},
		{"empty body", `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthHandlerFixture(t)
			c, rec := f.jsonContext(http.MethodPost, "/auth/login", tc.body)

			err := f.handler.Login(c)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, sessionCookie(rec))
			f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthHandler_Session(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.tokenService.EXPECT().Decode("session-token").Return(&service.SessionClaims{
		Email:                "u@example.com",
		AccessToken:          "upstream-access",
		RefreshToken:         "upstream-refresh",
		AccessTokenExpiresAt: time.Now().Add(time.Hour).Unix(),
		RegisteredClaims:     jwt.RegisteredClaims{Subject: "123"},
	}, nil)

	c, rec := f.jsonContext(http.MethodGet, "/auth/session", "")
	c.Request().AddCookie(&http.Cookie{Name: "gatekeeper_session", Value: "session-token"})

	require.NoError(t, f.handler.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subjectId":"123"`)
	assert.NotContains(t, rec.Body.String(), "upstream-refresh")
}

func TestAuthHandler_SessionDegraded(t *testing.T) {
	f := newAuthHandlerFixture(t)

	f.tokenService.EXPECT().Decode("session-token").Return(&service.SessionClaims{
		Email:                "u@example.com",
		AccessToken:          "upstream-access",
		RefreshToken:         "upstream-refresh",
		AccessTokenExpiresAt: time.Now().Add(-time.Minute).Unix(),
		RegisteredClaims:     jwt.RegisteredClaims{Subject: "123"},
	}, nil)

	c, rec := f.jsonContext(http.MethodGet, "/auth/session", "")
	c.Request().AddCookie(&http.Cookie{Name: "gatekeeper_session", Value: "session-token"})

	require.NoError(t, f.handler.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"`+entity.RefreshAccessTokenError+`"`)
}

func TestAuthHandler_SessionWithoutCookie(t *testing.T) {
	f := newAuthHandlerFixture(t)

	c, _ := f.jsonContext(http.MethodGet, "/auth/session", "")

	err := f.handler.Session(c)
	assert.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAuthHandlerFixture(t)

	c, rec := f.jsonContext(http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "gatekeeper_session", Value: "session-token"})

	require.NoError(t, f.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	f := newAuthHandlerFixture(t)

	// Logging out with nothing to clear still succeeds.
	c, rec := f.jsonContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, f.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_LogoutIdempotent(t *testing.T) {
	f := newAuthHandlerFixture(t)

	for range 2 {
		c, rec := f.jsonContext(http.MethodPost, "/auth/logout", "")
		require.NoError(t, f.handler.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthHandler_SignInEchoesCallbackURL(t *testing.T) {
	f := newAuthHandlerFixture(t)

	c, rec := f.jsonContext(http.MethodGet, "/auth/signin?callbackUrl=%2Fdashboard%2Foverview", "")

	require.NoError(t, f.handler.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"callbackUrl":"/dashboard/overview"`)
}

func TestAuthHandler_AuthErrorNormalizesCodes(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		expected string
	}{
		{"configuration", "?error=Configuration", ErrorCodeConfiguration},
		{"access denied", "?error=AccessDenied", ErrorCodeAccessDenied},
		{"verification", "?error=Verification", ErrorCodeVerification},
		{"unknown code", "?error=SomethingElse", ErrorCodeDefault},
		{"missing code", "", ErrorCodeDefault},
		{"injection attempt", "?error=%3Cscript%3E", ErrorCodeDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthHandlerFixture(t)
			c, rec := f.jsonContext(http.MethodGet, "/auth/error"+tc.query, "")

			require.NoError(t, f.handler.AuthError(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tc.expected+`"`)
		})
	}
}
