package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/harbourmove/leadsgo/internal/config"
	"github.com/harbourmove/leadsgo/internal/database"
	"github.com/harbourmove/leadsgo/internal/mailer"
	"github.com/harbourmove/leadsgo/internal/middleware"
	"github.com/harbourmove/leadsgo/internal/notify"
	"github.com/harbourmove/leadsgo/internal/websocket"
)

// Router wraps the mux router and the service dependencies
type Router struct {
	*mux.Router
	db         *database.DB
	cfg        *config.Config
	hub        *websocket.Hub
	dispatcher *notify.Dispatcher
	mailer     *mailer.Mailer
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *websocket.Hub) *Router {
	r := &Router{
		Router:     mux.NewRouter(),
		db:         db,
		cfg:        cfg,
		hub:        hub,
		dispatcher: notify.NewDispatcher(cfg.Notify.FunctionURL),
		mailer:     mailer.New(cfg.Notify),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Crawl directives
	r.HandleFunc("/robots.txt", r.robotsTxt).Methods("GET")
	r.HandleFunc("/sitemap.xml", r.sitemapXML).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Public intake + the notification function
	r.HandleFunc("/api/submissions", r.createSubmission).Methods("POST")
	r.HandleFunc("/api/notify", r.handleNotify).Methods("POST")

	// Operator API (JWT + admin role)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.JWTSecret), middleware.AdminOnly)
	admin.HandleFunc("/submissions", r.listSubmissions).Methods("GET")
	admin.HandleFunc("/submissions/export", r.exportSubmissionsCSV).Methods("GET")
	admin.HandleFunc("/submissions/{id}/summary.pdf", r.submissionSummaryPDF).Methods("GET")
	admin.HandleFunc("/submissions/{id}/status", r.updateSubmissionStatus).Methods("PATCH")
	admin.HandleFunc("/submissions/{id}", r.deleteSubmission).Methods("DELETE")

	// Live change feed for open dashboards
	r.HandleFunc("/ws/admin", r.serveAdminWS).Methods("GET")

	// Server-rendered site; the admin and dashboard areas are gated
	// before any content is served
	if cfg.FrontendDir != "" {
		files := http.FileServer(http.Dir(cfg.FrontendDir))
		guard := middleware.PageGuard(cfg.JWTSecret)
		r.PathPrefix("/admin").Handler(guard(files))
		r.PathPrefix("/dashboard").Handler(guard(files))
		r.PathPrefix("/").Handler(files)
	}

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// serveAdminWS upgrades an authenticated admin session to the live
// submission feed. Browsers cannot set headers on websocket upgrades,
// so the session cookie or a token query parameter is accepted.
func (r *Router) serveAdminWS(w http.ResponseWriter, req *http.Request) {
	claims := middleware.SessionClaims(req, r.cfg.JWTSecret)
	if claims == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}
	if role, _ := claims["role"].(string); role != "admin" {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return
	}
	websocket.ServeWs(r.hub, w, req)
}

// wsEvent is a submission change fanned out to open dashboards
type wsEvent struct {
	Event      string      `json:"event"`
	Submission interface{} `json:"submission,omitempty"`
	ID         string      `json:"id,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
