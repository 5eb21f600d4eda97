package services

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Scaler is the persisted standardization transform fitted at training time:
// feature-wise (x - mean) / scale.
type Scaler struct {
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	FeatureNames []string  `json:"feature_names,omitempty"`
}

// Validate checks the artifact's internal consistency.
func (s *Scaler) Validate() error {
	if len(s.Mean) != FeatureCount {
		return fmt.Errorf("scaler mean has %d entries, want %d", len(s.Mean), FeatureCount)
	}
	if len(s.Scale) != FeatureCount {
		return fmt.Errorf("scaler scale has %d entries, want %d", len(s.Scale), FeatureCount)
	}
	for i, v := range s.Scale {
		if v == 0 {
			return fmt.Errorf("scaler scale[%d] (%s) is zero", i, FeatureNames[i])
		}
	}
	if len(s.FeatureNames) > 0 {
		if err := checkFeatureNames(s.FeatureNames); err != nil {
			return fmt.Errorf("scaler: %w", err)
		}
	}
	return nil
}

// Transform standardizes a feature vector. The input is not modified.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("feature vector has %d entries, scaler expects %d", len(x), len(s.Mean))
	}
	scaled := make([]float64, len(x))
	copy(scaled, x)
	floats.Sub(scaled, s.Mean)
	floats.Div(scaled, s.Scale)
	return scaled, nil
}

func checkFeatureNames(names []string) error {
	if len(names) != FeatureCount {
		return fmt.Errorf("artifact lists %d feature names, want %d", len(names), FeatureCount)
	}
	for i, name := range names {
		if name != FeatureNames[i] {
			return fmt.Errorf("feature column %d is %q, want %q", i, name, FeatureNames[i])
		}
	}
	return nil
}
