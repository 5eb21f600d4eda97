package models

// PredictResponse is the success body of POST /api/predict.
type PredictResponse struct {
	Prediction float64 `json:"prediction"`
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Timestamp  string  `json:"timestamp,omitempty"`
}

// BatchResponse is the success body of POST /api/predict-batch. Predictions
// are index-aligned with the input list.
type BatchResponse struct {
	Predictions []float64 `json:"predictions"`
	Count       int       `json:"count"`
	Status      string    `json:"status"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
	Timestamp   string `json:"timestamp"`
}

// ModelInfoResponse is the body of GET /api/model-info.
type ModelInfoResponse struct {
	ModelName       string  `json:"model_name"`
	Version         string  `json:"version"`
	Algorithm       string  `json:"algorithm"`
	NEstimators     int     `json:"n_estimators"`
	R2Score         float64 `json:"r2_score"`
	MAE             float64 `json:"mae"`
	RMSE            float64 `json:"rmse"`
	InputFeatures   int     `json:"input_features"`
	TrainingSamples int     `json:"training_samples"`
	OutputType      string  `json:"output_type"`
}

// ErrorResponse is the shared error body: a request either fully succeeds or
// fully fails with this shape.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}
