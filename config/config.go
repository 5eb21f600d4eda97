package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port int
}

// ModelConfig locates the two artifacts the service needs at startup. When a
// URL is set and the local path is missing, the loader downloads into CacheDir.
type ModelConfig struct {
	ModelPath  string
	ScalerPath string
	ModelURL   string
	ScalerURL  string
	CacheDir   string
}

type CORSConfig struct {
	AllowedOrigins string
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars always win.
	_ = godotenv.Load()

	serverPort, err := getIntEnv("SERVER_PORT", 5000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Model: ModelConfig{
			ModelPath:  getEnv("MODEL_PATH", "model.json"),
			ScalerPath: getEnv("SCALER_PATH", "scaler.json"),
			ModelURL:   getEnv("MODEL_URL", ""),
			ScalerURL:  getEnv("SCALER_URL", ""),
			CacheDir:   getEnv("MODEL_CACHE_DIR", "/tmp/windpower_models"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
