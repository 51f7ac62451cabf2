package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/session"
	"gatekeeper/internal/usecase"
)

// GuardMiddleware gates access to the configured protected path patterns. It
// runs before any handler, so the pattern table is the single source of
// truth for what is protected; paths outside it bypass the guard entirely.
type GuardMiddleware struct {
	auth       usecase.AuthUsecase
	store      *session.Store
	patterns   []string
	signInPath string
	logger     *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware. The pattern
// table is copied once at startup and never mutated afterwards.
func NewGuardMiddleware(auth usecase.AuthUsecase, store *session.Store, cfg *config.Config, logger *slog.Logger) *GuardMiddleware {
	patterns := make([]string, len(cfg.Guard.ProtectedPaths))
	copy(patterns, cfg.Guard.ProtectedPaths)

	return &GuardMiddleware{
		auth:       auth,
		store:      store,
		patterns:   patterns,
		signInPath: cfg.Guard.SignInPath,
		logger:     logger,
	}
}

// Guard is the pre-dispatch filter. Materialization always happens before
// the authorization decision; a usable session (even a degraded one) is
// threaded onto the request context for handlers downstream.
func (m *GuardMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqPath := c.Request().URL.Path
		if !m.Protected(reqPath) {
			return next(c)
		}

		ctx := c.Request().Context()

		sess, err := m.auth.CurrentSession(ctx, m.store.Read(c))
		if err != nil {
			m.logger.Debug("Redirecting unauthenticated request",
				slog.String("path", reqPath))

			return c.Redirect(http.StatusFound, m.redirectTarget(c))
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithSession(ctx, sess)))

		return next(c)
	}
}

// Protected reports whether the path matches the policy table. Patterns are
// glob-based; a trailing "/*" also covers the bare prefix itself and any
// deeper nesting (path.Match stops at one segment).
func (m *GuardMiddleware) Protected(reqPath string) bool {
	for _, pattern := range m.patterns {
		if ok, err := path.Match(pattern, reqPath); err == nil && ok {
			return true
		}

		if prefix, found := strings.CutSuffix(pattern, "/*"); found {
			if reqPath == prefix || strings.HasPrefix(reqPath, prefix+"/") {
				return true
			}
		}
	}

	return false
}

// redirectTarget builds the sign-in redirect, preserving the originally
// requested destination so the client can return there after authenticating.
func (m *GuardMiddleware) redirectTarget(c echo.Context) string {
	destination := c.Request().URL.Path
	if raw := c.Request().URL.RawQuery; raw != "" {
		destination += "?" + raw
	}

	return m.signInPath + "?callbackUrl=" + url.QueryEscape(destination)
}
