package services

import (
	"math"

	"windpower-prediction-api/models"
)

// FeatureCount is the width of the model's input vector.
const FeatureCount = 25

// FeatureNames lists the engineered columns in training order. This ordering
// is a contract with the model artifact: the scaler's mean/scale arrays and
// every tree's feature indices refer to these positions. Changing it requires
// retraining.
var FeatureNames = []string{
	"Location", "Temp_2m", "RelHum_2m", "DP_2m",
	"WS_10m", "WS_100m", "WD_10m", "WD_100m", "WG_10m",
	"hour", "day", "month", "dayofweek", "is_weekend",
	"WD_10m_sin", "WD_10m_cos", "WD_100m_sin", "WD_100m_cos",
	"WS_10m_sq", "WS_10m_cu", "WS_100m_sq", "WS_100m_cu",
	"temp_humidity", "temp_dew_diff", "wind_shear",
}

// DeriveFeatures expands a validated reading into the 25-column model input.
// Pure and deterministic: the same reading always yields the same vector.
func DeriveFeatures(r models.Reading) []float64 {
	wd10Rad := r.WD10m * math.Pi / 180
	wd100Rad := r.WD100m * math.Pi / 180

	return []float64{
		// raw fields, request order
		float64(r.Location), r.Temp2m, r.RelHum2m, r.DP2m,
		r.WS10m, r.WS100m, r.WD10m, r.WD100m, r.WG10m,
		float64(r.Hour), float64(r.Day), float64(r.Month),
		float64(r.DayOfWeek), float64(r.IsWeekend),
		// circular wind direction encoding
		math.Sin(wd10Rad), math.Cos(wd10Rad),
		math.Sin(wd100Rad), math.Cos(wd100Rad),
		// polynomial wind speed terms
		r.WS10m * r.WS10m, r.WS10m * r.WS10m * r.WS10m,
		r.WS100m * r.WS100m, r.WS100m * r.WS100m * r.WS100m,
		// interaction terms
		r.Temp2m * r.RelHum2m,
		r.Temp2m - r.DP2m,
		r.WS100m - r.WS10m,
	}
}
