package identity

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Stub is a development stand-in for the external identity service. It
// implements the exact outbound contract gatekeeper depends on (POST
// /auth/login returning {accessToken, refreshToken}) over a bcrypt-hashed
// in-memory account table.
//
// It exists for local runs (cmd/identity-stub) and integration-style tests;
// production deployments point Identity.BaseURL at the real service.
type Stub struct {
	mu         sync.RWMutex
	users      map[string]stubUser
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *slog.Logger
}

type stubUser struct {
	subjectID    string
	email        string
	passwordHash string
}

type stubLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewStub creates a stub identity service signing its tokens with the given
// secret. The secret belongs to the stub alone; it is unrelated to the
// session signing secret.
func NewStub(secret string, logger *slog.Logger) *Stub {
	return &Stub{
		users:      make(map[string]stubUser),
		secret:     []byte(secret),
		accessTTL:  time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
		logger:     logger,
	}
}

// SeedUser registers an account, hashing the password with bcrypt.
func (s *Stub) SeedUser(subjectID, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash stub password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = stubUser{
		subjectID:    subjectID,
		email:        email,
		passwordHash: string(hash),
	}

	return nil
}

// Register mounts the identity endpoints on the given echo instance.
func (s *Stub) Register(e *echo.Echo) {
	e.POST("/auth/login", s.handleLogin)
}

func (s *Stub) handleLogin(c echo.Context) error {
	var req stubLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_request"})
	}

	s.mu.RLock()
	user, ok := s.users[req.Email]
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(req.Password)) != nil {
		s.logger.Debug("Stub rejected credentials", slog.String("email", req.Email))

		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_credentials"})
	}

	accessToken, err := s.mintToken(user, s.accessTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token_mint_failed"})
	}

	refreshToken, err := s.mintToken(user, s.refreshTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token_mint_failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (s *Stub) mintToken(user stubUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.subjectID,
		"email": user.email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign stub token")
	}

	return signed, nil
}
