// Package session implements the transport-level session store: a signed
// session token carried in a secure, HttpOnly cookie.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gatekeeper/config"
	"gatekeeper/internal/usecase"
)

// Store reads, writes and clears the session cookie. The cookie is HttpOnly
// without exception: the token pair inside the session token must never be
// reachable from the UI collaborator.
type Store struct {
	name   string
	maxAge time.Duration
	secure bool
}

// NewStore is the constructor for Store.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		name:   cfg.Session.CookieName,
		maxAge: cfg.Session.MaxAge,
		secure: cfg.Session.CookieSecure,
	}
}

// Read returns the raw session token from the request, or "" when absent.
func (s *Store) Read(c echo.Context) string {
	cookie, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Write stores the session token. The cookie lifetime is bounded by the
// session max-age, matching the token's own expiry.
func (s *Store) Write(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie. Clearing an absent cookie is a no-op success.
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Tier adapts the cookie store to a logout tier for the given request.
func (s *Store) Tier(c echo.Context) usecase.SessionTier {
	return &cookieTier{store: s, c: c}
}

type cookieTier struct {
	store *Store
	c     echo.Context
}

func (t *cookieTier) Name() string { return "cookie" }

func (t *cookieTier) Clear(context.Context) error {
	t.store.Clear(t.c)

	return nil
}
