package auth

import (
	"context"
	"passport/internal/core/domain/user"
)

type contextCurrentUser string

const CONTEXT_CURRENT_USER_KEY = contextCurrentUser("currentUser")

// UserFromContext returns the identity resolved by the external
// authentication layer, if any.
func UserFromContext(ctx context.Context) (u user.User, ok bool) {
	u, ok = ctx.Value(CONTEXT_CURRENT_USER_KEY).(user.User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, CONTEXT_CURRENT_USER_KEY, u)
}
