package handlers

import (
	"net/http"
	"time"

	"windpower-prediction-api/models"
	"windpower-prediction-api/services"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by /api/health and matches the artifact line the
// service was built against.
const APIVersion = "1.0.0"

type HealthHandler struct {
	predictor *services.PredictorService
}

func NewHealthHandler(predictor *services.PredictorService) *HealthHandler {
	return &HealthHandler{predictor: predictor}
}

// Health reports load state: 200 once the model/scaler pair is published,
// 503 before that.
func (h *HealthHandler) Health(c *gin.Context) {
	loaded := h.predictor.Loaded()

	status := "healthy"
	code := http.StatusOK
	if !loaded {
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, models.HealthResponse{
		Status:      status,
		ModelLoaded: loaded,
		Version:     APIVersion,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// ModelInfo serves the descriptive metadata carried in the model artifact.
func (h *HealthHandler) ModelInfo(c *gin.Context) {
	info, err := h.predictor.Info()
	if err != nil {
		errorJSON(c, http.StatusServiceUnavailable, "model not loaded")
		return
	}
	c.JSON(http.StatusOK, info)
}
