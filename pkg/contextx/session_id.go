package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// SessionID identifies one run of the interpreter in logs.
type SessionID string

type contextKeySessionID struct{}

func NewSessionID() SessionID {
	return SessionID(xid.New().String())
}

func (s SessionID) String() string {
	return string(s)
}

func WithSessionID(ctx context.Context, sessionID SessionID) context.Context {
	return context.WithValue(ctx, contextKeySessionID{}, sessionID)
}

func SessionIDFromContext(ctx context.Context) (SessionID, error) {
	sessionID, ok := ctx.Value(contextKeySessionID{}).(SessionID)
	if !ok {
		return "", fmt.Errorf("session id: %w", ErrNoValue)
	}

	return sessionID, nil
}
