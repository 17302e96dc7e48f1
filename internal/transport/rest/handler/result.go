package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"remedyai/internal/service"
)

// ResultHandler handles triage result endpoints
type ResultHandler struct {
	resultSvc *service.ResultService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc *service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// GetResult handles GET /v1/sessions/{id}/result. The first request for a
// complete session runs the advisory call (bounded by the client timeout);
// later requests re-render the stored result.
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	report, err := h.resultSvc.GetResult(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
