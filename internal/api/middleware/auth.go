package middleware

import (
	"errors"
	"net/http"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/config"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/metrics"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/session"
)

// RequireAuth authenticates the request: token from cookie (or bearer header),
// verified and checked against the revocation list, then the subject loaded
// from the store and attached to the context as the request identity.
//
// A valid token whose subject no longer exists gets the same 401 as a bad
// token, so callers cannot probe which accounts exist.
func RequireAuth(cfg *config.Config, repo *repository.SQLiteRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				metrics.AuthRejectedTotal.WithLabelValues("token_missing").Inc()
				unauthorized(w, "Unauthorized: token missing")
				return
			}

			claims, err := auth.VerifySessionTokenWithRevocation(r.Context(), cfg.JWTSecret, token, repo)
			if err != nil {
				reason := "token_invalid"
				if errors.Is(err, auth.ErrTokenRevoked) {
					reason = "token_revoked"
				}
				metrics.AuthRejectedTotal.WithLabelValues(reason).Inc()
				unauthorized(w, "Unauthorized: invalid token")
				return
			}

			user, err := repo.GetUserByID(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					metrics.AuthRejectedTotal.WithLabelValues("token_invalid").Inc()
					unauthorized(w, "Unauthorized: invalid token")
					return
				}
				dependencyError(w)
				return
			}

			identity := &auth.Identity{
				ID:       user.ID,
				EmailID:  user.EmailID,
				FullName: user.FullName,
				Role:     user.Role,
			}
			ctx := auth.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin permits only identities with the admin role. It must be
// composed after RequireAuth; a missing identity is a 401, never a pass.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := auth.IdentityFromContext(r.Context())
		if identity == nil {
			metrics.AuthRejectedTotal.WithLabelValues("token_missing").Inc()
			unauthorized(w, "Unauthorized: token missing")
			return
		}
		if !auth.IsAdmin(identity.Role) {
			metrics.AuthRejectedTotal.WithLabelValues("forbidden").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"success":false,"message":"Access Denied"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}

func dependencyError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"success":false,"message":"Internal server error"}`))
}
