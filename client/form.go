package client

import (
	"fmt"
	"strconv"
	"strings"

	"windpower-prediction-api/models"
)

// FieldNames lists the 14 raw form inputs in submission order.
var FieldNames = []string{
	"Location", "Temp_2m", "RelHum_2m", "DP_2m",
	"WS_10m", "WS_100m", "WD_10m", "WD_100m", "WG_10m",
	"hour", "day", "month", "dayofweek", "is_weekend",
}

// ParseForm type-coerces and validates the 14 raw field values. It returns
// either a fully validated request or every violation found: all checks run
// regardless of earlier failures, one message per failing field. Non-numeric
// text is a validation error, never coerced to zero.
func ParseForm(raw map[string]string) (*models.PredictionRequest, []string) {
	var violations []string
	req := &models.PredictionRequest{}

	req.Location = parseIntField(raw, "Location", &violations)
	req.Temp2m = parseFloatField(raw, "Temp_2m", &violations)
	req.RelHum2m = parseFloatField(raw, "RelHum_2m", &violations)
	req.DP2m = parseFloatField(raw, "DP_2m", &violations)
	req.WS10m = parseFloatField(raw, "WS_10m", &violations)
	req.WS100m = parseFloatField(raw, "WS_100m", &violations)
	req.WD10m = parseFloatField(raw, "WD_10m", &violations)
	req.WD100m = parseFloatField(raw, "WD_100m", &violations)
	req.WG10m = parseFloatField(raw, "WG_10m", &violations)
	req.Hour = parseIntField(raw, "hour", &violations)
	req.Day = parseIntField(raw, "day", &violations)
	req.Month = parseIntField(raw, "month", &violations)
	req.DayOfWeek = parseIntField(raw, "dayofweek", &violations)
	req.IsWeekend = parseIntField(raw, "is_weekend", &violations)

	violations = append(violations, req.ValidateRanges()...)

	if len(violations) > 0 {
		return nil, violations
	}
	return req, nil
}

func parseIntField(raw map[string]string, name string, violations *[]string) *int {
	value, ok := raw[name]
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		*violations = append(*violations, fmt.Sprintf("%s is required", name))
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*violations = append(*violations, fmt.Sprintf("%s must be a whole number, got %q", name, value))
		return nil
	}
	return &parsed
}

func parseFloatField(raw map[string]string, name string, violations *[]string) *float64 {
	value, ok := raw[name]
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		*violations = append(*violations, fmt.Sprintf("%s is required", name))
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*violations = append(*violations, fmt.Sprintf("%s must be a number, got %q", name, value))
		return nil
	}
	return &parsed
}
