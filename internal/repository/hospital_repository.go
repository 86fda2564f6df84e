package repository // repository holds read access to the service's reference data

import "github.com/bharat-health-buddy/api/internal/model" // model defines the response records

// hospitals is the fixed hospital list.  Order is part of the API contract.
var hospitals = [...]model.Hospital{
	{Name: "AIIMS Delhi", Address: "New Delhi"},
	{Name: "Apollo Hospital", Address: "Delhi"},
}

// nearbyHospitals is returned for every coordinate pair.
var nearbyHospitals = [...]model.NearbyHospital{
	{Name: "AIIMS Hospital", DistanceKm: 2.5},
	{Name: "City Clinic", DistanceKm: 4.2},
}

// HospitalRepo serves the in-memory hospital directory.  The backing arrays
// are never modified; every call returns a fresh slice so callers cannot
// change what later requests see.
type HospitalRepo struct{}

// NewHospitalRepo constructs a HospitalRepo.
func NewHospitalRepo() *HospitalRepo {
	return &HospitalRepo{}
}

// List returns the hospital directory in its fixed order.
func (r *HospitalRepo) List() []model.Hospital {
	out := make([]model.Hospital, len(hospitals))
	copy(out, hospitals[:])
	return out
}

// Nearby returns hospitals close to the given coordinates.  The directory
// has no geographic data, so the coordinates do not affect the result.
func (r *HospitalRepo) Nearby(_, _ float64) []model.NearbyHospital {
	out := make([]model.NearbyHospital, len(nearbyHospitals))
	copy(out, nearbyHospitals[:])
	return out
}
