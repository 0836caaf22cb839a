package auth

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/common"
)

type callerKey struct{}

// WithCaller records the user that signed the current request.
func WithCaller(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerKey{}, userID)
}

// CallerFromContext returns the signing user, if any.
func CallerFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(callerKey{}).(string)
	return u, ok && u != ""
}

// Authorizer checks that user signed the request carried by ctx.
type Authorizer interface {
	Authorize(ctx context.Context, user string) error
}

// ContextAuthorizer accepts a request only when the caller bound to the
// context is exactly the user the operation acts for.
type ContextAuthorizer struct{}

func (ContextAuthorizer) Authorize(ctx context.Context, user string) error {
	caller, ok := CallerFromContext(ctx)
	if !ok || user == "" || caller != user {
		return common.ErrMissingSignature
	}
	return nil
}
