package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const draftSessionKey ctxKey = "draft_session"

// WithSession tags the context with the active draft session identifier.
// One session corresponds to one live draft.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, draftSessionKey, sessionID)
}

func SessionFrom(ctx context.Context) string {
	if v := ctx.Value(draftSessionKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with the draft session automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	sessionID := SessionFrom(ctx)
	if sessionID == "" {
		return L()
	}
	return L().With(zap.String("draft_session", sessionID))
}
