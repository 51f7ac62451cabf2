// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gatekeeper/internal/domain/entity"
)

// SessionClaims is the payload embedded in the signed session token. It
// carries the verified identity plus the upstream token pair so that
// downstream calls can forward them without a second lookup.
type SessionClaims struct {
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	// AccessTokenExpiresAt is the unix expiry of the embedded upstream
	// access token, used to flag degraded sessions.
	AccessTokenExpiresAt int64 `json:"accessTokenExpiresAt,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and decoding the signed
// session token. The signing key and algorithm are owned entirely by the
// implementation; tokens are opaque bytes to every other component.
type TokenService interface {
	// Issue embeds the verified claims and the upstream token pair into a
	// signed session token bounded by the configured session max-age.
	Issue(claims *entity.IdentityClaims, pair *entity.TokenPair) (string, error)

	// Decode verifies signature and expiry. Any verification failure yields
	// domain errors.ErrInvalidToken, never partial claims. Decoding is pure
	// and side-effect-free.
	Decode(token string) (*SessionClaims, error)

	// SessionMaxAge returns the configured lifetime of issued session tokens.
	SessionMaxAge() time.Duration
}
