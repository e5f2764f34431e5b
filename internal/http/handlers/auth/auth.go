package auth

import (
	"net/http"
	c "passport/internal/core/domain/common"
	"passport/internal/core/domain/user"
	"passport/internal/core/services/auth"
)

// SetCurrentUserToContext is the authentication layer for the session
// issuer: it resolves Basic credentials against the user store and, on
// success, attaches the identity to the request context. Requests with
// missing or bad credentials pass through without an identity; the
// handlers decide what that means.
func SetCurrentUserToContext(
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			u, err := userRepository.GetByEmail(r.Context(), c.NewEmail(email))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if !u.PasswordHash.IsPresent ||
				!passwordHasher.ValidatePassword(user.RawPassword(password), u.PasswordHash.Value) {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), u)))
		})
	}
}
