package services

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"windpower-prediction-api/models"
)

// ErrModelNotLoaded is returned while the model/scaler pair is absent.
var ErrModelNotLoaded = errors.New("model not loaded")

// PredictorService owns the process-wide model and scaler. Both are
// write-once at startup and read-only afterwards, so any number of requests
// may run inference concurrently.
type PredictorService struct {
	mu     sync.RWMutex
	forest *Forest
	scaler *Scaler
}

func NewPredictorService() *PredictorService {
	return &PredictorService{}
}

// Load publishes a validated model/scaler pair. The two artifacts must agree
// with the feature deriver's column contract; Forest.Validate and
// Scaler.Validate enforce that before anything is published.
func (s *PredictorService) Load(forest *Forest, scaler *Scaler) error {
	if forest == nil || scaler == nil {
		return errors.New("both model and scaler are required")
	}
	if err := forest.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if err := scaler.Validate(); err != nil {
		return fmt.Errorf("scaler: %w", err)
	}

	s.mu.Lock()
	s.forest = forest
	s.scaler = scaler
	s.mu.Unlock()
	return nil
}

// Loaded reports whether inference is possible.
func (s *PredictorService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forest != nil && s.scaler != nil
}

// Predict runs the full pipeline for one reading: derive the 25 engineered
// features, standardize them, average the forest, clamp to [0,1].
func (s *PredictorService) Predict(r models.Reading) (float64, error) {
	s.mu.RLock()
	forest, scaler := s.forest, s.scaler
	s.mu.RUnlock()

	if forest == nil || scaler == nil {
		return 0, ErrModelNotLoaded
	}

	features := DeriveFeatures(r)
	scaled, err := scaler.Transform(features)
	if err != nil {
		return 0, err
	}
	prediction, err := forest.Predict(scaled)
	if err != nil {
		return 0, err
	}
	return math.Max(0.0, math.Min(1.0, prediction)), nil
}

// Info returns the descriptive metadata carried in the model artifact.
func (s *PredictorService) Info() (*models.ModelInfoResponse, error) {
	s.mu.RLock()
	forest := s.forest
	s.mu.RUnlock()

	if forest == nil {
		return nil, ErrModelNotLoaded
	}
	return &models.ModelInfoResponse{
		ModelName:       forest.ModelName,
		Version:         forest.Version,
		Algorithm:       forest.Algorithm,
		NEstimators:     forest.NEstimators,
		R2Score:         forest.Metrics.R2Score,
		MAE:             forest.Metrics.MAE,
		RMSE:            forest.Metrics.RMSE,
		InputFeatures:   FeatureCount,
		TrainingSamples: forest.TrainingSamples,
		OutputType:      "Normalized Power (0-1)",
	}, nil
}
