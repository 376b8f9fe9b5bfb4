package auth

import (
	"context"

	"havahills/backoffice/internal/common"
)

type contextKey string

var sessionDataKey contextKey = "session_data"

func SetSessionData(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey, session)
}

func GetSessionData(ctx context.Context) *common.SessionData {
	val := ctx.Value(sessionDataKey)
	if session, ok := val.(*common.SessionData); ok {
		return session
	}
	return nil
}
