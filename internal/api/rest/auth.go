package rest

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/auth"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/models"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/metrics"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/pkg/validate"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/session"
)

const (
	loginRateLimit  = 5 // per minute
	loginBurst      = 5
	loginLimiterCap = 10000
)

// Signup handles POST /signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDoc(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.SignUp(doc); err != nil {
		respondValidation(w, err)
		return
	}
	password := docString(doc, "password")
	if err := auth.ValidatePassword(password, auth.DefaultPasswordPolicy()); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		respondInternal(w)
		return
	}

	email := auth.NormalizeEmail(docString(doc, "emailId"))
	u := &models.User{
		FullName:     docString(doc, "fullName"),
		PhoneNumber:  docString(doc, "phoneNumber"),
		EmailID:      email,
		PasswordHash: hash,
		Role:         auth.RoleForEmail(email, h.cfg.AdminEmail),
		State:        docString(doc, "state"),
		District:     docString(doc, "district"),
		Crops:        docStringSlice(doc, "crops"),
		Age:          docInt(doc, "age"),
		CropHistory:  docStringSlice(doc, "cropHistory"),
	}

	ctx := r.Context()
	if err := h.repo.CreateUser(ctx, u); err != nil {
		if repository.IsDuplicate(err) {
			respondError(w, http.StatusBadRequest, "User already exists with this email or phone number")
			return
		}
		log.Printf("[auth] signup: create user failed: %v", err)
		respondInternal(w)
		return
	}

	token, err := auth.IssueSessionToken(h.cfg.JWTSecret, u.ID)
	if err != nil {
		log.Printf("[auth] signup: token issue failed: %v", err)
		respondInternal(w)
		return
	}
	session.Set(w, token, h.cfg.Production)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    u.Project(),
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response; the distinction exists only in the server log.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ip := h.clientIP(r)
	if !h.loginLimiter(ip).Allow() {
		metrics.AuthLoginTotal.WithLabelValues("rate_limited").Inc()
		w.Header().Set("Retry-After", "60")
		respondError(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
		return
	}

	var req struct {
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	if err := decodeInto(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.EmailID = auth.NormalizeEmail(req.EmailID)
	if req.EmailID == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx := r.Context()
	u, err := h.repo.GetUserByEmail(ctx, req.EmailID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("[auth] login failure: unknown email, ip=%s", ip)
			metrics.AuthLoginTotal.WithLabelValues("invalid_credentials").Inc()
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("[auth] login: lookup failed: %v", err)
		metrics.AuthLoginTotal.WithLabelValues("error").Inc()
		respondInternal(w)
		return
	}

	if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		log.Printf("[auth] login failure: wrong password, user=%s ip=%s", u.ID, ip)
		metrics.AuthLoginTotal.WithLabelValues("invalid_credentials").Inc()
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.IssueSessionToken(h.cfg.JWTSecret, u.ID)
	if err != nil {
		log.Printf("[auth] login: token issue failed: %v", err)
		metrics.AuthLoginTotal.WithLabelValues("error").Inc()
		respondInternal(w)
		return
	}
	session.Set(w, token, h.cfg.Production)
	metrics.AuthLoginTotal.WithLabelValues("success").Inc()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"user":    u.Project(),
	})
}

// CurrentUser handles GET /user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	u, err := h.repo.GetUserByID(r.Context(), id.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    u.Project(),
		"isAdmin": auth.IsAdmin(u.Role),
	})
}

// Logout handles POST /logout. The cleared cookie carries the same
// attributes Set uses, and the token's jti is revoked so the session cannot
// be replayed from a saved cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.revokeCurrentToken(r, "logout")
	session.Clear(w, h.cfg.Production)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logout successful",
	})
}

// AuthCheck handles GET /auth/check.
func (h *Handler) AuthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          auth.IdentityFromContext(r.Context()),
	})
}

// revokeCurrentToken blacklists the request's session token. Best effort:
// a failed revocation must not block logout or account deletion.
func (h *Handler) revokeCurrentToken(r *http.Request, reason string) {
	token := session.TokenFromRequest(r)
	if token == "" {
		return
	}
	claims, err := auth.VerifySessionToken(h.cfg.JWTSecret, token)
	if err != nil {
		return
	}
	expires := time.Now().Add(auth.SessionTokenExpiry)
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	rt := &models.RevokedToken{
		TokenID:   claims.ID,
		UserID:    claims.Subject,
		ExpiresAt: expires,
		Reason:    reason,
	}
	if err := h.repo.RevokeToken(r.Context(), rt); err != nil {
		log.Printf("[auth] token revocation failed: %v", err)
	}
}

// loginLimiter returns or creates a rate limiter for the given IP. The map
// is dropped wholesale at loginLimiterCap so a source rotating addresses
// cannot grow it without bound; throttle state resets with it, which is the
// acceptable cost.
func (h *Handler) loginLimiter(ip string) *rate.Limiter {
	h.loginLimiterMu.Lock()
	defer h.loginLimiterMu.Unlock()
	limiter, ok := h.loginLimiters[ip]
	if !ok {
		if len(h.loginLimiters) >= loginLimiterCap {
			h.loginLimiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rate.Limit(loginRateLimit)/rate.Limit(60), loginBurst)
		h.loginLimiters[ip] = limiter
	}
	return limiter
}

// clientIP identifies the caller for login throttling. Forwarding headers
// are spoofable by a direct client, so they only count when the deployment
// declares a trusted proxy in front.
func (h *Handler) clientIP(r *http.Request) string {
	if h.cfg.TrustProxyHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			return strings.TrimSpace(strings.Split(xff, ",")[0])
		}
		if ip := r.Header.Get("X-Real-IP"); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
