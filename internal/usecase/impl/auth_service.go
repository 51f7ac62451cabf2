// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	verifier     service.IdentityVerifier
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier     service.IdentityVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitCredentials verifies the credentials and mints a signed session token.
func (srv *authService) SubmitCredentials(ctx context.Context, input *usecase.SubmitCredentialsInput) (*usecase.SubmitCredentialsOutput, error) {
	srv.log(ctx).Debug("Starting credential verification", slog.String("email", input.Email))

	claims, pair, err := srv.verifier.Verify(ctx, entity.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		// One uniform failure for every branch; details were logged at the
		// verifier and must not surface here.
		srv.log(ctx).Warn("Credential verification failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "login failed")
	}

	sessionToken, err := srv.tokenService.Issue(claims, pair)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("subjectID", claims.SubjectID))

	return &usecase.SubmitCredentialsOutput{
		SessionToken: sessionToken,
		Session: &entity.Session{
			SubjectID:    claims.SubjectID,
			Email:        claims.Email,
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	}, nil
}

// CurrentSession materializes a session from a raw session token. It is a
// pure transform over already-fetched token bytes: decode, then enrich.
func (srv *authService) CurrentSession(ctx context.Context, rawToken string) (*entity.Session, error) {
	if rawToken == "" {
		return nil, errors.Wrap(domainerrors.ErrSessionUnavailable, "no session token presented")
	}

	claims, err := srv.tokenService.Decode(rawToken)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSessionUnavailable, "session token did not verify")
	}

	session, err := enrichSession(claims)
	if err != nil {
		srv.log(ctx).Debug("Session not materializable", slog.Any("error", err))

		return nil, err
	}

	return session, nil
}

// enrichSession turns decoded claims into a session value. No in-place
// mutation of anything: claims in, fresh session out.
//
// When the embedded upstream access token has expired but the session token
// itself still verifies, the session is degraded rather than refused: it
// carries RefreshAccessTokenError to signal that a refresh is advisable.
// Degradation still requires a refresh-token-derived identity; without a
// refresh token there is nothing to recover with and no session is produced.
func enrichSession(claims *service.SessionClaims) (*entity.Session, error) {
	session := &entity.Session{
		SubjectID:    claims.Subject,
		Email:        claims.Email,
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
	}

	if claims.AccessTokenExpiresAt > 0 && time.Now().Unix() >= claims.AccessTokenExpiresAt {
		if claims.RefreshToken == "" {
			return nil, errors.Wrap(domainerrors.ErrSessionUnavailable, "access token expired with no refresh token")
		}

		session.Error = entity.RefreshAccessTokenError
	}

	return session, nil
}

// Logout clears every tier it is handed. Each clear is attempted even if an
// earlier one failed; failures are logged, not propagated, because a user
// must never stay logged in due to a partial failure. Calling it again on an
// already-logged-out context clears nothing and succeeds.
func (srv *authService) Logout(ctx context.Context, tiers ...usecase.SessionTier) {
	srv.log(ctx).Info("Logging out", slog.Int("tiers", len(tiers)))

	for _, tier := range tiers {
		if err := tier.Clear(ctx); err != nil {
			srv.log(ctx).Warn("Failed to clear session tier",
				slog.String("tier", tier.Name()),
				slog.Any("error", err))

			continue
		}
		srv.log(ctx).Debug("Cleared session tier", slog.String("tier", tier.Name()))
	}
}
