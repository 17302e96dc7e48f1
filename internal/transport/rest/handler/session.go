package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"remedyai/internal/catalog"
	"remedyai/internal/model"
	"remedyai/internal/service"
)

// SessionHandler handles survey session endpoints
type SessionHandler struct {
	surveySvc *service.SurveyService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(surveySvc *service.SurveyService) *SessionHandler {
	return &SessionHandler{surveySvc: surveySvc}
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.surveySvc.StartSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse(h.surveySvc, session))
}

// GetQuestion handles GET /v1/sessions/{id}/question
func (h *SessionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.surveySvc.GetSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(h.surveySvc, session))
}

// SelectRequest is the request body for selecting an option
type SelectRequest struct {
	Option string `json:"option"`
}

// Select handles POST /v1/sessions/{id}/select
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Option == "" {
		writeError(w, http.StatusBadRequest, "option is required")
		return
	}

	session, err := h.surveySvc.SelectOption(r.Context(), id, req.Option)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(h.surveySvc, session))
}

// Advance handles POST /v1/sessions/{id}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.surveySvc.Advance(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(h.surveySvc, session))
}

func sessionResponse(svc *service.SurveyService, session *model.SurveySession) map[string]interface{} {
	resp := map[string]interface{}{
		"sessionId": session.ID,
		"done":      session.Complete,
		"question":  nil,
		"progress": map[string]int{
			"current": session.Index + 1,
			"total":   catalog.Count(),
		},
	}
	if q := svc.CurrentQuestion(session); q != nil {
		resp["question"] = q
	}
	return resp
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidOption):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionComplete), errors.Is(err, service.ErrSessionOpen):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
