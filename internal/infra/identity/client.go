// Package identity talks to the external identity service that owns
// credential verification.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

// loginResponse is the wire shape of a successful identity service login.
type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// maxLoginResponseBytes bounds how much of the identity service's response
// body is read; anything larger is malformed by definition.
const maxLoginResponseBytes = 1 << 20

// httpVerifier is a concrete implementation of the IdentityVerifier
// interface over the identity service's HTTP API.
type httpVerifier struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPVerifier is the constructor for httpVerifier. The verify timeout
// bounds the only blocking I/O in the session core.
func NewHTTPVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if strings.TrimSpace(cfg.Identity.BaseURL) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("identity base URL must be provided")
	}

	return &httpVerifier{
		baseURL: strings.TrimRight(cfg.Identity.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Identity.VerifyTimeout,
		},
		logger: logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the verifier's logger.
func (v *httpVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Verify submits the credentials to POST {baseURL}/auth/login. Every failure
// branch collapses to ErrAuthenticationFailed; the underlying reasons are
// logged here and surface nowhere else.
func (v *httpVerifier) Verify(ctx context.Context, creds entity.Credentials) (*entity.IdentityClaims, *entity.TokenPair, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("empty credentials")
	}

	body, err := json.Marshal(map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		// Network failure and credential failure are indistinguishable to the
		// caller. Cancellation in flight issues no tokens either way.
		v.log(ctx).Warn("Identity service call failed", slog.Any("error", err))

		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("identity service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		v.log(ctx).Debug("Identity service rejected credentials", slog.Int("status", resp.StatusCode))

		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("identity service returned non-2xx")
	}

	var payload loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxLoginResponseBytes)).Decode(&payload); err != nil {
		v.log(ctx).Warn("Identity service response is not valid JSON", slog.Any("error", err))

		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("malformed identity service response")
	}

	if payload.AccessToken == "" {
		v.log(ctx).Warn("Identity service response is missing the access token")

		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("identity service response missing access token")
	}

	claims, err := decodeIdentityClaims(payload.AccessToken)
	if err != nil {
		v.log(ctx).Warn("Identity service access token has malformed claims", slog.Any("error", err))

		return nil, nil, domainerrors.ErrAuthenticationFailed.WrapMessage("malformed identity claims")
	}

	pair := &entity.TokenPair{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
	}

	return claims, pair, nil
}

// decodeIdentityClaims extracts the identity claims from the upstream access
// token without re-verifying it; the identity service's signature is trusted
// transitively.
func decodeIdentityClaims(accessToken string) (*entity.IdentityClaims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, mapClaims); err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("access token has no subject")
	}

	email, _ := mapClaims["email"].(string)

	issuedAt := time.Now()
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		issuedAt = iat.Time
	}

	return &entity.IdentityClaims{
		SubjectID: subject,
		Email:     email,
		IssuedAt:  issuedAt,
	}, nil
}
