package middleware

import (
	"context"
	"net/http"
	"strings"

	h "campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type contextKey string

const viewerKey contextKey = "viewer"

// SetViewer returns a context with the viewer identity set. Used by auth middleware.
func SetViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// ViewerFromContext returns the authenticated viewer from the context. The
// zero Viewer (anonymous) is returned when no token was presented.
func ViewerFromContext(ctx context.Context) domain.Viewer {
	viewer, ok := ctx.Value(viewerKey).(domain.Viewer)
	if !ok {
		return domain.Viewer{}
	}
	return viewer
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	return strings.TrimSpace(auth[len(prefix):]), true
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// viewer in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing or malformed authorization header")
				return
			}
			viewer, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetViewer(r.Context(), viewer)))
		}
	}
}

// OptionalAuth is like RequireAuth except that a missing Authorization header
// passes through as the anonymous viewer. A header that is present but
// invalid is still rejected, so clients learn their token expired instead of
// silently seeing the public slice.
func OptionalAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next(w, r)
				return
			}
			viewer, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetViewer(r.Context(), viewer)))
		}
	}
}
