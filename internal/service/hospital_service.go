package service

import (
	"math"
	"sort"

	"remedyai/internal/catalog"
	"remedyai/internal/model"
)

// Seoul City Hall - used when the caller supplies no position
const (
	DefaultLat = 37.5665
	DefaultLng = 126.9780
)

// HospitalService serves the static hospital directory
type HospitalService struct{}

// NewHospitalService creates a new hospital service
func NewHospitalService() *HospitalService {
	return &HospitalService{}
}

// List returns the full directory
func (s *HospitalService) List() []model.Hospital {
	return catalog.Hospitals()
}

// Nearby returns the directory sorted by distance from (lat, lng)
func (s *HospitalService) Nearby(lat, lng float64) []model.HospitalDistance {
	hospitals := catalog.Hospitals()
	out := make([]model.HospitalDistance, 0, len(hospitals))
	for _, h := range hospitals {
		out = append(out, model.HospitalDistance{
			Hospital:   h,
			DistanceKM: haversineKM(lat, lng, h.Lat, h.Lng),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKM < out[j].DistanceKM
	})
	return out
}

// haversineKM is the great-circle distance between two coordinates
func haversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKM = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
