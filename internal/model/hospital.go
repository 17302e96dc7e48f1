package model

// Hospital is one entry of the static nearby-hospital directory
type Hospital struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Phone string  `json:"phone"`
}

// HospitalDistance pairs a directory entry with its distance from the
// caller's position, for the nearby listing.
type HospitalDistance struct {
	Hospital
	DistanceKM float64 `json:"distanceKm"`
}
