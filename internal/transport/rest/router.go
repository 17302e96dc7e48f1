package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"remedyai/internal/repository"
	"remedyai/internal/service"
	"remedyai/internal/transport/rest/handler"
	"remedyai/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	SurveyService   *service.SurveyService
	ResultService   *service.ResultService
	HospitalService *service.HospitalService
	RecordRepo      repository.RecordRepo
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.SurveyService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	hospitalHandler := handler.NewHospitalHandler(c.HospitalService)
	recordHandler := handler.NewRecordHandler(c.RecordRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.SurveyService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/question", sessionHandler.GetQuestion).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/select", sessionHandler.Select).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/advance", sessionHandler.Advance).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/result", resultHandler.GetResult).Methods("GET", "OPTIONS")

	v1.HandleFunc("/hospitals", hospitalHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/hospitals/nearby", hospitalHandler.Nearby).Methods("GET", "OPTIONS")

	v1.HandleFunc("/records", recordHandler.ListRecent).Methods("GET", "OPTIONS")

	// WebSocket route: one result_ready push per completed session
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
