package repository

import (
	"strings" // strings normalises lookup keys

	"github.com/bharat-health-buddy/api/internal/model"
)

// symptomConditions maps a lower-case symptom to the conditions it may
// indicate.
var symptomConditions = map[string][]string{
	"fever": {"Flu", "Cold", "COVID-19"},
	"cough": {"Cold", "Bronchitis"},
}

// homeRemedies maps a lower-case condition to its remedies.
var homeRemedies = map[string][]string{
	"headache": {"Drink ginger tea", "Rest", "Use cold compress"},
	"cough":    {"Honey", "Steam inhalation"},
	"fever":    {"Hydration", "Paracetamol"},
}

// noRemedies is answered for unknown conditions.
const noRemedies = "No remedies found"

var healthCamps = [...]model.HealthCamp{
	{Title: "Free Eye Checkup", Date: "2025-09-10", Location: "Community Hall"},
	{Title: "Blood Donation Drive", Date: "2025-09-15", Location: "City Hospital"},
}

// CareRepo answers symptom, remedy and health camp lookups from static
// reference tables.
type CareRepo struct{}

// NewCareRepo constructs a CareRepo.
func NewCareRepo() *CareRepo {
	return &CareRepo{}
}

// CheckSymptoms collects the conditions for every known symptom.  Lookups
// ignore case and surrounding space.  Each condition appears once, in the
// order it was first reached.  Received is never nil.
func (r *CareRepo) CheckSymptoms(symptoms []string) model.SymptomCheck {
	seen := make(map[string]bool)
	conditions := []string{}
	for _, s := range symptoms {
		for _, cond := range symptomConditions[strings.ToLower(strings.TrimSpace(s))] {
			if !seen[cond] {
				seen[cond] = true
				conditions = append(conditions, cond)
			}
		}
	}
	received := make([]string, len(symptoms))
	copy(received, symptoms)
	return model.SymptomCheck{PossibleConditions: conditions, Received: received}
}

// Remedies returns the home remedies for condition.  The condition is
// echoed unchanged; unknown conditions get a single "No remedies found"
// entry.
func (r *CareRepo) Remedies(condition string) model.RemedyList {
	remedies, ok := homeRemedies[strings.ToLower(condition)]
	if !ok {
		return model.RemedyList{Condition: condition, Remedies: []string{noRemedies}}
	}
	out := make([]string, len(remedies))
	copy(out, remedies)
	return model.RemedyList{Condition: condition, Remedies: out}
}

// HealthCamps lists upcoming health camps.
func (r *CareRepo) HealthCamps() []model.HealthCamp {
	out := make([]model.HealthCamp, len(healthCamps))
	copy(out, healthCamps[:])
	return out
}
