package service

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// IdentityVerifier defines the interface for credential verification against
// the identity service that owns the account store.
type IdentityVerifier interface {
	// Verify submits the credentials. On success it returns the identity
	// claims decoded from the identity service's access token (the upstream
	// signature is trusted transitively, not re-verified against a second
	// trust root) together with the minted token pair. Every failure branch
	// (bad credentials, unreachable service, missing or malformed tokens)
	// collapses to domain errors.ErrAuthenticationFailed so callers cannot
	// distinguish "wrong password" from "unknown user".
	Verify(ctx context.Context, creds entity.Credentials) (*entity.IdentityClaims, *entity.TokenPair, error)
}
