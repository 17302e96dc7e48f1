package handler

import (
	"net/http"
	"strconv"

	"remedyai/internal/repository"
)

const defaultRecordLimit = 20

// RecordHandler handles survey record endpoints
type RecordHandler struct {
	records repository.RecordRepo
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(records repository.RecordRepo) *RecordHandler {
	return &RecordHandler{records: records}
}

// ListRecent handles GET /v1/records?limit=
func (h *RecordHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultRecordLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	records, err := h.records.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}
