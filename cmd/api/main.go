package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"windpower-prediction-api/config"
	"windpower-prediction-api/handlers"
	"windpower-prediction-api/middleware"
	"windpower-prediction-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	predictor := services.NewPredictorService()
	loader := services.NewArtifactLoader(cfg.Model, log)

	// Artifact loading may block on a remote fetch; that cost is paid once
	// here and never per-request.
	if err := loadArtifacts(ctx, loader, predictor); err != nil {
		log.Warnw("starting without a loaded model; predictions will fail until artifacts are present",
			"error", err)
	}

	router := setupRouter(cfg, predictor, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", srv.Addr, "model_loaded", predictor.Loaded())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown failed", "error", err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl
	return zapCfg.Build()
}

func loadArtifacts(ctx context.Context, loader *services.ArtifactLoader, predictor *services.PredictorService) error {
	forest, err := loader.LoadForest(ctx)
	if err != nil {
		return err
	}
	scaler, err := loader.LoadScaler(ctx)
	if err != nil {
		return err
	}
	return predictor.Load(forest, scaler)
}

func setupRouter(cfg *config.Config, predictor *services.PredictorService, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SetupCORS(cfg.CORS))

	healthHandler := handlers.NewHealthHandler(predictor)
	predictionHandler := handlers.NewPredictionHandler(predictor, log)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)
	api.GET("/model-info", healthHandler.ModelInfo)
	api.POST("/predict", predictionHandler.Predict)
	api.POST("/predict-batch", predictionHandler.PredictBatch)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found", "status": "error"})
	})

	return router
}
