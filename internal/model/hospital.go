package model

// Hospital is an entry of the static hospital list served by
// GET /api/hospitals.
type Hospital struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// NearbyHospital is an entry returned by GET /api/nearby-hospitals.
type NearbyHospital struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

// HealthCamp describes an upcoming community health camp.
type HealthCamp struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // YYYY-MM-DD
	Location string `json:"location"`
}
