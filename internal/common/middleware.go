package common

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// Authenticator attaches the bearer identity to the request context and
// gates mutation routes.
type Authenticator struct {
	tokens *TokenManager
	syncer IdentitySyncer
}

func NewAuthenticator(tokens *TokenManager, syncer IdentitySyncer) *Authenticator {
	return &Authenticator{tokens: tokens, syncer: syncer}
}

// Authenticate never rejects; a missing or bad token just leaves the
// request anonymous.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Authorization: Bearer <token>
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			id, err := a.tokens.ValidToken(parts[1])
			if err == nil {
				r = r.WithContext(WithIdentity(r.Context(), *id))
			} else {
				log.Printf("Rejected bearer token: %v", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Require answers 401 without an identity and syncs the caller's user row
// before the handler runs.
func (a *Authenticator) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok {
			WriteError(w, ErrUnauthenticated)
			return
		}
		if a.syncer != nil {
			if err := a.syncer.SyncIdentity(r.Context(), id); err != nil {
				WriteError(w, err)
				return
			}
		}
		next(w, r)
	}
}

// CorsMiddleware adds CORS headers
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
