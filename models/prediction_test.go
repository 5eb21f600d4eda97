package models

import (
	"strings"
	"testing"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validRequest() PredictionRequest {
	return PredictionRequest{
		Location:  intPtr(1),
		Temp2m:    floatPtr(12.5),
		RelHum2m:  floatPtr(65.0),
		DP2m:      floatPtr(6.1),
		WS10m:     floatPtr(5.4),
		WS100m:    floatPtr(8.2),
		WD10m:     floatPtr(180.0),
		WD100m:    floatPtr(175.0),
		WG10m:     floatPtr(7.1),
		Hour:      intPtr(14),
		Day:       intPtr(21),
		Month:     intPtr(3),
		DayOfWeek: intPtr(4),
		IsWeekend: intPtr(0),
	}
}

func TestMissingFieldsNone(t *testing.T) {
	req := validRequest()
	if missing := req.MissingFields(); len(missing) != 0 {
		t.Errorf("MissingFields() = %v, want none", missing)
	}
}

func TestMissingFieldsReported(t *testing.T) {
	req := validRequest()
	req.Temp2m = nil
	req.Hour = nil
	req.IsWeekend = nil

	missing := req.MissingFields()
	want := []string{"Temp_2m", "hour", "is_weekend"}
	if len(missing) != len(want) {
		t.Fatalf("MissingFields() = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("MissingFields()[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestValidateRangesValid(t *testing.T) {
	req := validRequest()
	if violations := req.ValidateRanges(); len(violations) != 0 {
		t.Errorf("ValidateRanges() = %v, want none", violations)
	}
}

func TestValidateRangesEachField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*PredictionRequest)
		wantFrag string
	}{
		{"humidity over 100", func(r *PredictionRequest) { r.RelHum2m = floatPtr(150) }, "RelHum_2m"},
		{"humidity negative", func(r *PredictionRequest) { r.RelHum2m = floatPtr(-3) }, "RelHum_2m"},
		{"wind direction 10m over 360", func(r *PredictionRequest) { r.WD10m = floatPtr(400) }, "WD_10m"},
		{"wind direction 100m over 360", func(r *PredictionRequest) { r.WD100m = floatPtr(361) }, "WD_100m"},
		{"hour 24", func(r *PredictionRequest) { r.Hour = intPtr(24) }, "hour"},
		{"day 32", func(r *PredictionRequest) { r.Day = intPtr(32) }, "day"},
		{"day 0", func(r *PredictionRequest) { r.Day = intPtr(0) }, "day"},
		{"month 13", func(r *PredictionRequest) { r.Month = intPtr(13) }, "month"},
		{"dayofweek 7", func(r *PredictionRequest) { r.DayOfWeek = intPtr(7) }, "dayofweek"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			violations := req.ValidateRanges()
			if len(violations) != 1 {
				t.Fatalf("ValidateRanges() = %v, want exactly one violation", violations)
			}
			if !strings.Contains(violations[0], tt.wantFrag) {
				t.Errorf("violation %q does not name field %q", violations[0], tt.wantFrag)
			}
		})
	}
}

func TestValidateRangesAggregated(t *testing.T) {
	req := validRequest()
	req.RelHum2m = floatPtr(150)
	req.WD10m = floatPtr(400)
	req.Hour = intPtr(24)
	req.Day = intPtr(32)
	req.Month = intPtr(13)
	req.DayOfWeek = intPtr(7)

	violations := req.ValidateRanges()
	if len(violations) != 6 {
		t.Fatalf("ValidateRanges() reported %d violations, want 6: %v", len(violations), violations)
	}
	joined := strings.Join(violations, "\n")
	for _, field := range []string{"RelHum_2m", "WD_10m", "hour", "day", "month", "dayofweek"} {
		if !strings.Contains(joined, field) {
			t.Errorf("aggregated violations missing field %q", field)
		}
	}
}

func TestValidateRangesBoundaries(t *testing.T) {
	req := validRequest()
	req.RelHum2m = floatPtr(100)
	req.WD10m = floatPtr(360)
	req.WD100m = floatPtr(0)
	req.Hour = intPtr(23)
	req.Day = intPtr(31)
	req.Month = intPtr(12)
	req.DayOfWeek = intPtr(6)

	if violations := req.ValidateRanges(); len(violations) != 0 {
		t.Errorf("boundary values flagged as violations: %v", violations)
	}
}

func TestReading(t *testing.T) {
	req := validRequest()
	r := req.Reading()
	if r.Location != 1 || r.Temp2m != 12.5 || r.WD10m != 180.0 || r.Hour != 14 || r.IsWeekend != 0 {
		t.Errorf("Reading() = %+v, fields do not match request", r)
	}
}
