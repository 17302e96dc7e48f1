package handler

import (
	"net/http"
	"strconv"

	"remedyai/internal/service"
)

// HospitalHandler handles hospital directory endpoints
type HospitalHandler struct {
	hospitalSvc *service.HospitalService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(hospitalSvc *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitalSvc: hospitalSvc}
}

// List handles GET /v1/hospitals
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": h.hospitalSvc.List(),
	})
}

// Nearby handles GET /v1/hospitals/nearby?lat=&lng=. Missing or malformed
// coordinates degrade to the fixed default position instead of failing.
func (h *HospitalHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	lat := parseCoord(r.URL.Query().Get("lat"), service.DefaultLat)
	lng := parseCoord(r.URL.Query().Get("lng"), service.DefaultLng)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": h.hospitalSvc.Nearby(lat, lng),
	})
}

func parseCoord(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
