package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/floobyte/site-api/internal/infra/session"
)

// SessionCookieName carries the opaque session token issued at login.
const SessionCookieName = "sid"

// RequireAuth gates the admin surface. Disabled skips the check entirely,
// which is a deployment switch for local and test environments.
func RequireAuth(sessions session.Store, disabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if disabled {
				next.ServeHTTP(w, r)
				return
			}

			if c, err := r.Cookie(SessionCookieName); err == nil {
				if data, ok := sessions.Get(c.Value); ok && data.Authenticated {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized. Please log in."})
		})
	}
}
