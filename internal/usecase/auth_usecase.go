// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitCredentialsInput defines the data required for a user to log in.
type SubmitCredentialsInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SubmitCredentialsOutput returns the signed session token and its
// materialized projection after a successful login.
type SubmitCredentialsOutput struct {
	SessionToken string
	Session      *entity.Session
}

// SessionTier is one storage tier holding session material. Logout clears
// every tier it is handed, independently and unconditionally.
type SessionTier interface {
	// Name identifies the tier in logs.
	Name() string

	// Clear removes any session material the tier holds. Clearing an
	// already-empty tier is a no-op success.
	Clear(ctx context.Context) error
}

// AuthUsecase defines the interface for the authentication and session
// lifecycle. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// SubmitCredentials verifies the credentials against the identity
	// service and mints a signed session token.
	SubmitCredentials(ctx context.Context, input *SubmitCredentialsInput) (*SubmitCredentialsOutput, error)

	// CurrentSession materializes a request-scoped session from a raw
	// session token. It returns ErrSessionUnavailable when no usable
	// session can be produced; a returned session may be degraded (carry a
	// non-fatal Error flag) but always has a subject id.
	CurrentSession(ctx context.Context, rawToken string) (*entity.Session, error)

	// Logout clears every given tier. Per-tier failures are logged, never
	// returned; the call does not come back until all clears were attempted.
	Logout(ctx context.Context, tiers ...SessionTier)
}
