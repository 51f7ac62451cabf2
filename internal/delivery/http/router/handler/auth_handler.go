// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/delivery/http/session"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/usecase"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	store  *session.Store
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, store *session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		store:  store,
		logger: logger,
	}
}

// sessionView is the session projection that crosses to the UI collaborator.
// The refresh token never appears here.
type sessionView struct {
	SubjectID string `json:"subjectId"`
	Email     string `json:"email"`
	Error     string `json:"error,omitempty"`
}

func newSessionView(s *entity.Session) sessionView {
	return sessionView{
		SubjectID: s.SubjectID,
		Email:     s.Email,
		Error:     s.Error,
	}
}

// Login handles credential submission. On success the signed session token
// is stored in the cookie; on failure nothing is stored and the client gets
// the uniform generic message.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.SubmitCredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitCredentials(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.store.Write(c, output.SessionToken)

	return response.Success(c, http.StatusOK, newSessionView(output.Session), "Login successful")
}

// Session returns the current session, or the session-unavailable envelope
// when no usable session can be materialized from the cookie.
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := h.uc.CurrentSession(c.Request().Context(), h.store.Read(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(sess), "")
}

// Logout clears every session tier this process controls: the cookie and the
// request scope. It succeeds even when called with no session at all.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.uc.Logout(c.Request().Context(), h.store.Tier(c), &requestScopeTier{c: c})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// SignIn is the sign-in entry point the guard redirects to. Rendering the
// form is the UI collaborator's job; this endpoint hands it the preserved
// destination.
func (h *AuthHandler) SignIn(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"callbackUrl": c.QueryParam("callbackUrl"),
	}, "Sign in required")
}

// Error endpoint error codes. Anything outside the set normalizes to
// ErrorCodeDefault; raw error messages never appear here.
const (
	ErrorCodeConfiguration = "Configuration"
	ErrorCodeAccessDenied  = "AccessDenied"
	ErrorCodeVerification  = "Verification"
	ErrorCodeDefault       = "Default"
)

// AuthError serves the machine-readable error page target.
func (h *AuthHandler) AuthError(c echo.Context) error {
	code := c.QueryParam("error")
	switch code {
	case ErrorCodeConfiguration, ErrorCodeAccessDenied, ErrorCodeVerification:
	default:
		code = ErrorCodeDefault
	}

	return response.Success(c, http.StatusOK, map[string]string{"code": code}, "")
}

// requestScopeTier clears the session value from the request context.
type requestScopeTier struct {
	c echo.Context
}

func (t *requestScopeTier) Name() string { return "request" }

func (t *requestScopeTier) Clear(ctx context.Context) error {
	t.c.SetRequest(t.c.Request().WithContext(deliverycontext.WithSession(ctx, nil)))

	return nil
}
