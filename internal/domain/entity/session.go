// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Credentials is the ephemeral email/password pair submitted at login.
// It exists only for the duration of a verification call and is never
// persisted or logged.
type Credentials struct {
	Email    string
	Password string
}

// IdentityClaims is the immutable result of a successful credential
// verification: the identity the external identity service vouched for.
type IdentityClaims struct {
	SubjectID string    // Opaque, stable per account.
	Email     string
	IssuedAt  time.Time
}

// TokenPair holds the tokens minted by the identity service. Both are opaque
// to every component except the token service that embeds them into the
// session token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshAccessTokenError marks a degraded session whose embedded upstream
// access token has expired while the session token itself still verifies.
// Callers treat it as a hint that a refresh is advisable, not as a failure.
const RefreshAccessTokenError = "RefreshAccessTokenError"

// Session is the request-scoped projection of a valid session token. It is
// constructed fresh per request, never mutated afterwards, and discarded
// when the request ends.
type Session struct {
	SubjectID    string
	Email        string
	AccessToken  string
	RefreshToken string
	// Error carries a non-fatal flag such as RefreshAccessTokenError.
	// An empty string means the session is fully healthy.
	Error string
}

// Degraded reports whether the session carries a non-fatal error flag.
func (s *Session) Degraded() bool {
	return s.Error != ""
}
