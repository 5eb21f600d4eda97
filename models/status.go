package models

// Power status bands. Boundaries are half-open: a value exactly on a
// threshold belongs to the upper band.
const (
	StatusLow    = "LOW"
	StatusMedium = "MEDIUM"
	StatusHigh   = "HIGH"

	MediumThreshold = 0.33
	HighThreshold   = 0.66
)

// ClassifyPower maps a normalized prediction to its status band.
func ClassifyPower(p float64) string {
	switch {
	case p >= HighThreshold:
		return StatusHigh
	case p >= MediumThreshold:
		return StatusMedium
	default:
		return StatusLow
	}
}
