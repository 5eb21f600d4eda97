package models

import "fmt"

// PredictionRequest is the wire form of a single prediction input. Fields are
// pointers so a missing key can be told apart from a legitimate zero (hour=0,
// is_weekend=0). JSON names are case-sensitive and fixed by the API contract.
type PredictionRequest struct {
	Location  *int     `json:"Location"`
	Temp2m    *float64 `json:"Temp_2m"`
	RelHum2m  *float64 `json:"RelHum_2m"`
	DP2m      *float64 `json:"DP_2m"`
	WS10m     *float64 `json:"WS_10m"`
	WS100m    *float64 `json:"WS_100m"`
	WD10m     *float64 `json:"WD_10m"`
	WD100m    *float64 `json:"WD_100m"`
	WG10m     *float64 `json:"WG_10m"`
	Hour      *int     `json:"hour"`
	Day       *int     `json:"day"`
	Month     *int     `json:"month"`
	DayOfWeek *int     `json:"dayofweek"`
	IsWeekend *int     `json:"is_weekend"`
}

// Reading is a fully populated prediction input, produced from a
// PredictionRequest once all fields are known present.
type Reading struct {
	Location  int
	Temp2m    float64
	RelHum2m  float64
	DP2m      float64
	WS10m     float64
	WS100m    float64
	WD10m     float64
	WD100m    float64
	WG10m     float64
	Hour      int
	Day       int
	Month     int
	DayOfWeek int
	IsWeekend int
}

// MissingFields returns the JSON names of all absent fields, in request order.
func (r *PredictionRequest) MissingFields() []string {
	var missing []string
	if r.Location == nil {
		missing = append(missing, "Location")
	}
	if r.Temp2m == nil {
		missing = append(missing, "Temp_2m")
	}
	if r.RelHum2m == nil {
		missing = append(missing, "RelHum_2m")
	}
	if r.DP2m == nil {
		missing = append(missing, "DP_2m")
	}
	if r.WS10m == nil {
		missing = append(missing, "WS_10m")
	}
	if r.WS100m == nil {
		missing = append(missing, "WS_100m")
	}
	if r.WD10m == nil {
		missing = append(missing, "WD_10m")
	}
	if r.WD100m == nil {
		missing = append(missing, "WD_100m")
	}
	if r.WG10m == nil {
		missing = append(missing, "WG_10m")
	}
	if r.Hour == nil {
		missing = append(missing, "hour")
	}
	if r.Day == nil {
		missing = append(missing, "day")
	}
	if r.Month == nil {
		missing = append(missing, "month")
	}
	if r.DayOfWeek == nil {
		missing = append(missing, "dayofweek")
	}
	if r.IsWeekend == nil {
		missing = append(missing, "is_weekend")
	}
	return missing
}

// ValidateRanges runs every range check and returns all violations, one
// message per failing field. It never short-circuits. Nil fields are skipped;
// callers are expected to reject missing fields first.
func (r *PredictionRequest) ValidateRanges() []string {
	var violations []string
	if r.RelHum2m != nil && (*r.RelHum2m < 0 || *r.RelHum2m > 100) {
		violations = append(violations, fmt.Sprintf("RelHum_2m must be between 0 and 100, got %g", *r.RelHum2m))
	}
	if r.WD10m != nil && (*r.WD10m < 0 || *r.WD10m > 360) {
		violations = append(violations, fmt.Sprintf("WD_10m must be between 0 and 360, got %g", *r.WD10m))
	}
	if r.WD100m != nil && (*r.WD100m < 0 || *r.WD100m > 360) {
		violations = append(violations, fmt.Sprintf("WD_100m must be between 0 and 360, got %g", *r.WD100m))
	}
	if r.Hour != nil && (*r.Hour < 0 || *r.Hour > 23) {
		violations = append(violations, fmt.Sprintf("hour must be between 0 and 23, got %d", *r.Hour))
	}
	if r.Day != nil && (*r.Day < 1 || *r.Day > 31) {
		violations = append(violations, fmt.Sprintf("day must be between 1 and 31, got %d", *r.Day))
	}
	if r.Month != nil && (*r.Month < 1 || *r.Month > 12) {
		violations = append(violations, fmt.Sprintf("month must be between 1 and 12, got %d", *r.Month))
	}
	if r.DayOfWeek != nil && (*r.DayOfWeek < 0 || *r.DayOfWeek > 6) {
		violations = append(violations, fmt.Sprintf("dayofweek must be between 0 and 6, got %d", *r.DayOfWeek))
	}
	return violations
}

// Reading dereferences the request into a plain value struct. All fields must
// be present; callers check MissingFields first.
func (r *PredictionRequest) Reading() Reading {
	return Reading{
		Location:  *r.Location,
		Temp2m:    *r.Temp2m,
		RelHum2m:  *r.RelHum2m,
		DP2m:      *r.DP2m,
		WS10m:     *r.WS10m,
		WS100m:    *r.WS100m,
		WD10m:     *r.WD10m,
		WD100m:    *r.WD100m,
		WG10m:     *r.WG10m,
		Hour:      *r.Hour,
		Day:       *r.Day,
		Month:     *r.Month,
		DayOfWeek: *r.DayOfWeek,
		IsWeekend: *r.IsWeekend,
	}
}
