// Package admin gates operator endpoints behind a shared token. Only the
// bcrypt hash of the token is configured on the server; the cleartext lives
// with the operators.
package admin

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"nomen/pkg/requestcontext"
)

// Header carries the operator token on ops requests.
const Header = "X-Operator-Token"

// RequireOperatorToken rejects requests whose token does not match the
// configured bcrypt hash.
func RequireOperatorToken(tokenHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(Header)
			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "operator token mismatch",
					"request_id", requestcontext.RequestID(ctx),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"operator token required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
