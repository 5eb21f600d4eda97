package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"windpower-prediction-api/models"
	"windpower-prediction-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictionHandler struct {
	predictor *services.PredictorService
	log       *zap.SugaredLogger
}

func NewPredictionHandler(predictor *services.PredictorService, log *zap.SugaredLogger) *PredictionHandler {
	return &PredictionHandler{predictor: predictor, log: log}
}

// errorJSON writes the shared error body. Every failed request uses this
// shape; there is no partial-success response.
func errorJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, models.ErrorResponse{Error: msg, Status: "error"})
}

func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		errorJSON(c, http.StatusBadRequest, "missing fields: "+strings.Join(missing, ", "))
		return
	}

	if violations := req.ValidateRanges(); len(violations) > 0 {
		errorJSON(c, http.StatusUnprocessableEntity, strings.Join(violations, "; "))
		return
	}

	prediction, err := h.predictAndObserve(req.Reading())
	if err != nil {
		services.PredictionFailures.Inc()
		if errors.Is(err, services.ErrModelNotLoaded) {
			errorJSON(c, http.StatusInternalServerError, "model not loaded")
			return
		}
		// Internal detail stays in the log, not the response.
		h.log.Errorw("inference failed", "error", err)
		errorJSON(c, http.StatusInternalServerError, "inference failed")
		return
	}

	services.PredictionsTotal.Inc()
	h.log.Infow("prediction made", "prediction", prediction)

	c.JSON(http.StatusOK, models.PredictResponse{
		Prediction: prediction,
		Status:     "success",
		Message:    fmt.Sprintf("Predicted wind power output: %.4f (normalized 0-1)", prediction),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *PredictionHandler) PredictBatch(c *gin.Context) {
	var reqs []models.PredictionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		errorJSON(c, http.StatusBadRequest, "expected list of prediction objects")
		return
	}
	// A JSON null decodes into a nil slice without a bind error; it is still
	// not a list.
	if reqs == nil {
		errorJSON(c, http.StatusBadRequest, "expected list of prediction objects")
		return
	}

	predictions := make([]float64, 0, len(reqs))
	for i := range reqs {
		if missing := reqs[i].MissingFields(); len(missing) > 0 {
			errorJSON(c, http.StatusBadRequest,
				fmt.Sprintf("item %d: missing fields: %s", i, strings.Join(missing, ", ")))
			return
		}
		if violations := reqs[i].ValidateRanges(); len(violations) > 0 {
			errorJSON(c, http.StatusUnprocessableEntity,
				fmt.Sprintf("item %d: %s", i, strings.Join(violations, "; ")))
			return
		}

		prediction, err := h.predictAndObserve(reqs[i].Reading())
		if err != nil {
			services.PredictionFailures.Inc()
			if errors.Is(err, services.ErrModelNotLoaded) {
				errorJSON(c, http.StatusInternalServerError, "model not loaded")
				return
			}
			h.log.Errorw("batch inference failed", "item", i, "error", err)
			errorJSON(c, http.StatusInternalServerError, fmt.Sprintf("item %d: inference failed", i))
			return
		}
		services.PredictionsTotal.Inc()
		predictions = append(predictions, prediction)
	}

	services.BatchRequestsTotal.Inc()
	h.log.Infow("batch prediction made", "count", len(predictions))

	c.JSON(http.StatusOK, models.BatchResponse{
		Predictions: predictions,
		Count:       len(predictions),
		Status:      "success",
	})
}

func (h *PredictionHandler) predictAndObserve(r models.Reading) (float64, error) {
	start := time.Now()
	prediction, err := h.predictor.Predict(r)
	services.InferenceDuration.Observe(time.Since(start).Seconds())
	return prediction, err
}
