// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	maxAge time.Duration // Time-to-live for issued session tokens.
}

// NewJWTService is the constructor for jwtService. The signing secret is
// process-wide read-only configuration; an empty secret aborts startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.Secret),
		maxAge: cfg.Session.MaxAge,
	}, nil
}

// Issue embeds the verified identity and the upstream token pair into a
// single HS256-signed session token.
func (s *jwtService) Issue(claims *entity.IdentityClaims, pair *entity.TokenPair) (string, error) {
	if claims == nil || claims.SubjectID == "" {
		return "", errors.New("identity claims with a subject id are required")
	}

	now := time.Now()
	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = now
	}

	sessionClaims := &service.SessionClaims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
		},
	}

	if pair != nil {
		sessionClaims.AccessToken = pair.AccessToken
		sessionClaims.RefreshToken = pair.RefreshToken
		sessionClaims.AccessTokenExpiresAt = upstreamExpiry(pair.AccessToken)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Decode verifies signature and expiry against the server wall clock with no
// grace window. Every failure maps to ErrInvalidToken; partial claims are
// never returned.
func (s *jwtService) Decode(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("session token verification failed")
	}

	if claims.Subject == "" {
		// A session is never decoupled from its subject.
		return nil, domainerrors.ErrInvalidToken.WrapMessage("session token has no subject")
	}

	return claims, nil
}

// SessionMaxAge returns the configured lifetime of issued session tokens.
func (s *jwtService) SessionMaxAge() time.Duration {
	return s.maxAge
}

// upstreamExpiry reads the exp claim of the identity service's access token
// without verifying it; the upstream signature was already trusted
// transitively at verification time. Returns 0 when no expiry is readable.
func upstreamExpiry(accessToken string) int64 {
	if accessToken == "" {
		return 0
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return 0
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}

	return exp.Unix()
}
