// Package metadata captures where a request came from: the client IP
// (proxy-aware) and a compact description of the User-Agent. Handlers and
// audit details read both from the request context.
package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"nomen/pkg/requestcontext"
)

// Maximum length kept of a User-Agent that failed to parse.
const maxRawAgentLength = 64

// ClientMetadata extracts client IP and User-Agent from the request and adds
// them to the context. Apply early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		agent := DescribeUserAgent(r.Header.Get("User-Agent"))

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, agent)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DescribeUserAgent reduces a raw User-Agent header to "browser version (os)"
// so log lines stay readable. Agents the parser cannot name pass through
// truncated.
func DescribeUserAgent(raw string) string {
	if raw == "" {
		return ""
	}

	ua := useragent.New(raw)
	name, version := ua.Browser()
	if name == "" {
		if len(raw) > maxRawAgentLength {
			return raw[:maxRawAgentLength]
		}
		return raw
	}

	desc := name
	if version != "" {
		desc += " " + version
	}
	if os := ua.OS(); os != "" {
		desc += " (" + os + ")"
	}
	return desc
}

// ClientIPFromRequest extracts the real client IP from the request, handling
// proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs; the first is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr carries a port ("ip:port", or "[::1]:port" for IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
