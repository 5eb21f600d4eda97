package services

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Tree is one regression tree in the flattened CART layout the training
// pipeline exports: parallel arrays indexed by node id. A leaf has both child
// ids set to -1 and its regression output in Value.
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// Predict walks the tree for one feature vector. The caller guarantees the
// vector length matches the forest's feature count.
func (t *Tree) Predict(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] >= 0 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

func (t *Tree) validate(featureCount int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree node arrays disagree on length")
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if (left < 0) != (right < 0) {
			return fmt.Errorf("node %d has one child only", i)
		}
		if left < 0 {
			continue
		}
		// Children always follow their parent in the flattened export, so a
		// self or backward edge means an artifact that would never terminate.
		if left <= i || right <= i || left >= n || right >= n {
			return fmt.Errorf("node %d has child ids %d/%d, want (%d,%d)", i, left, right, i, n)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= featureCount {
			return fmt.Errorf("node %d splits on feature %d, want [0,%d)", i, t.Feature[i], featureCount)
		}
	}
	return nil
}

// ModelMetrics is the training-time evaluation carried in the artifact,
// served verbatim by /api/model-info.
type ModelMetrics struct {
	R2Score float64 `json:"r2_score"`
	MAE     float64 `json:"mae"`
	RMSE    float64 `json:"rmse"`
}

// Forest is the deserialized Random Forest regression artifact. It is
// read-only after load and safe for concurrent use.
type Forest struct {
	ModelName       string       `json:"model_name"`
	Version         string       `json:"version"`
	Algorithm       string       `json:"algorithm"`
	NEstimators     int          `json:"n_estimators"`
	FeatureNames    []string     `json:"feature_names"`
	TrainingSamples int          `json:"training_samples"`
	Metrics         ModelMetrics `json:"metrics"`
	Trees           []Tree       `json:"trees"`
}

// Validate checks the artifact's internal consistency, including that its
// column order matches the feature deriver's contract.
func (f *Forest) Validate() error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest has no trees")
	}
	if err := checkFeatureNames(f.FeatureNames); err != nil {
		return fmt.Errorf("forest: %w", err)
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(FeatureCount); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

// Predict averages the per-tree regressions for one scaled feature vector.
// Rejects a malformed vector length rather than truncating or padding.
func (f *Forest) Predict(x []float64) (float64, error) {
	if len(x) != FeatureCount {
		return 0, fmt.Errorf("feature vector has %d entries, model expects %d", len(x), FeatureCount)
	}
	outputs := make([]float64, len(f.Trees))
	for i := range f.Trees {
		outputs[i] = f.Trees[i].Predict(x)
	}
	return stat.Mean(outputs, nil), nil
}
