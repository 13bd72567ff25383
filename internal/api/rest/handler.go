// Package rest implements the public HTTP API: account signup/login,
// profile management, help tickets, crop and cultivation reference data,
// sensor ingestion and fingerprint enrollment.
package rest

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/iNitishSheoran/KhetMitra-BE/internal/api/middleware"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/config"
	"github.com/iNitishSheoran/KhetMitra-BE/internal/repository"
)

// Handler manages HTTP request handlers.
type Handler struct {
	repo *repository.SQLiteRepository
	cfg  *config.Config

	loginLimiterMu sync.Mutex
	loginLimiters  map[string]*rate.Limiter // per-IP login limiters
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *repository.SQLiteRepository, cfg *config.Config) *Handler {
	return &Handler{
		repo:          repo,
		cfg:           cfg,
		loginLimiters: make(map[string]*rate.Limiter),
	}
}

// SetupRoutes configures API routes. Route prefixes and handler paths mirror
// the frontend's expectations, so they must not change without coordinating
// a client release.
func SetupRoutes(router *mux.Router, h *Handler) {
	authMW := middleware.RequireAuth(h.cfg, h.repo)
	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return authMW(middleware.RequireAdmin(fn))
	}

	// Account routes
	router.HandleFunc("/signup", h.Signup).Methods("POST")
	router.HandleFunc("/login", h.Login).Methods("POST")
	router.Handle("/user", authMW(http.HandlerFunc(h.CurrentUser))).Methods("GET")
	router.Handle("/logout", authMW(http.HandlerFunc(h.Logout))).Methods("POST")
	router.Handle("/auth/check", authMW(http.HandlerFunc(h.AuthCheck))).Methods("GET")

	// Profile routes
	profile := router.PathPrefix("/profile").Subrouter()
	profile.Use(authMW)
	profile.HandleFunc("/view", h.ProfileView).Methods("GET")
	profile.HandleFunc("/edit", h.ProfileEdit).Methods("PATCH")
	profile.HandleFunc("/delete", h.ProfileDelete).Methods("DELETE")

	// Help ticket routes
	help := router.PathPrefix("/help").Subrouter()
	help.Handle("/submit", authMW(http.HandlerFunc(h.HelpSubmit))).Methods("POST")
	help.Handle("/myRequests", authMW(http.HandlerFunc(h.HelpMyRequests))).Methods("GET")
	help.Handle("/delete/{id}", authMW(http.HandlerFunc(h.HelpDelete))).Methods("DELETE")
	help.Handle("/all", adminOnly(h.HelpAll)).Methods("GET")
	help.Handle("/status/{id}", adminOnly(h.HelpUpdateStatus)).Methods("PATCH")

	// Crop reference data. Reads are public (the dropdown loads before
	// login); writes are admin only. The {name} route is registered last so
	// it cannot shadow /all and /details.
	crop := router.PathPrefix("/crop").Subrouter()
	crop.Handle("/add", adminOnly(h.CropAdd)).Methods("POST")
	crop.HandleFunc("/all", h.CropNames).Methods("GET")
	crop.HandleFunc("/details/{name}", h.CropDetails).Methods("GET")
	crop.Handle("/update", adminOnly(h.CropUpdate)).Methods("PATCH")
	crop.Handle("/delete", adminOnly(h.CropDelete)).Methods("DELETE")
	crop.HandleFunc("/{name}", h.CropByName).Methods("GET")

	// Cultivation guides
	cultivation := router.PathPrefix("/cultivation").Subrouter()
	cultivation.Handle("/add", adminOnly(h.CultivationAdd)).Methods("POST")
	cultivation.Handle("/names", authMW(http.HandlerFunc(h.CultivationNames))).Methods("GET")
	cultivation.Handle("/{name}", authMW(http.HandlerFunc(h.CultivationByName))).Methods("GET")

	// Field-station ingestion. No auth: the ESP32 unit has no session.
	sensor := router.PathPrefix("/sensor").Subrouter()
	sensor.HandleFunc("", h.SensorIngest).Methods("POST")
	sensor.HandleFunc("/latest", h.SensorLatest).Methods("GET")

	// Fingerprint sensor integration, called by the kiosk device.
	biometric := router.PathPrefix("/api/biometric").Subrouter()
	biometric.HandleFunc("/enroll", h.BiometricEnroll).Methods("POST")
	biometric.HandleFunc("/verify", h.BiometricVerify).Methods("POST")
	biometric.HandleFunc("/delete", h.BiometricDelete).Methods("DELETE")
	biometric.HandleFunc("/user/{id}", h.BiometricUser).Methods("GET")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")
}

// respondJSON writes data as a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes the standard failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
