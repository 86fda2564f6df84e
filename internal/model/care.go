package model

// SymptomRequest is the body accepted by POST /api/symptoms.
type SymptomRequest struct {
	Symptoms []string `json:"symptoms"`
}

// SymptomCheck lists the conditions associated with the received symptoms.
type SymptomCheck struct {
	PossibleConditions []string `json:"possible_conditions"`
	Received           []string `json:"received"`
}

// RemedyList holds the home remedies known for a condition.
type RemedyList struct {
	Condition string   `json:"condition"`
	Remedies  []string `json:"remedies"`
}
