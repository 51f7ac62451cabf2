package context

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// KeySession is the key for the request-scoped session. The session is a
// value threaded through the request context, never looked up from ambient
// global state, so it can never leak across requests.
const KeySession ContextKey = "session"

// GetSession extracts the materialized session from context.Context.
// A nil result means the request is unauthenticated.
func GetSession(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}
