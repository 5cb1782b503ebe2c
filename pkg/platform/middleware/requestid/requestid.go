// Package requestid assigns every request a correlation ID. Inbound IDs from
// trusted proxies are reused so traces line up across services; otherwise a
// fresh UUID is generated. The ID is echoed on the response and stored in the
// request context.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"nomen/pkg/requestcontext"
)

// Header carries the correlation ID on requests and responses.
const Header = "X-Request-ID"

// Middleware ensures the request has a correlation ID. Apply first in the
// chain so every later middleware can log it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(Header, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
