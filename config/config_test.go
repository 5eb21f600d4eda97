package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Unsetenv("TEST_CONFIG_VAR")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %q, want %q", got, "default")
	}

	os.Setenv("TEST_CONFIG_VAR", "custom")
	defer os.Unsetenv("TEST_CONFIG_VAR")
	if got := getEnv("TEST_CONFIG_VAR", "default"); got != "custom" {
		t.Errorf("getEnv() = %q, want %q", got, "custom")
	}
}

func TestGetIntEnv(t *testing.T) {
	t.Run("fallback when unset", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		got, err := getIntEnv("TEST_INT_VAR", 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5000 {
			t.Errorf("getIntEnv() = %d, want %d", got, 5000)
		}
	})

	t.Run("parses valid int", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR", "9090")
		defer os.Unsetenv("TEST_INT_VAR")
		got, err := getIntEnv("TEST_INT_VAR", 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 9090 {
			t.Errorf("getIntEnv() = %d, want %d", got, 9090)
		}
	})

	t.Run("error on invalid int", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR", "not_int")
		defer os.Unsetenv("TEST_INT_VAR")
		_, err := getIntEnv("TEST_INT_VAR", 5000)
		if err == nil {
			t.Error("expected error for invalid int value")
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "MODEL_PATH", "SCALER_PATH", "MODEL_URL", "SCALER_URL",
		"MODEL_CACHE_DIR", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Model.ModelPath != "model.json" {
		t.Errorf("Model.ModelPath = %q, want %q", cfg.Model.ModelPath, "model.json")
	}
	if cfg.Model.ScalerPath != "scaler.json" {
		t.Errorf("Model.ScalerPath = %q, want %q", cfg.Model.ScalerPath, "scaler.json")
	}
	if cfg.Model.ModelURL != "" {
		t.Errorf("Model.ModelURL = %q, want empty", cfg.Model.ModelURL)
	}
	if cfg.Model.CacheDir != "/tmp/windpower_models" {
		t.Errorf("Model.CacheDir = %q, want %q", cfg.Model.CacheDir, "/tmp/windpower_models")
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("CORS.AllowedOrigins = %q, want %q", cfg.CORS.AllowedOrigins, "*")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadConfigCustom(t *testing.T) {
	os.Setenv("SERVER_PORT", "3000")
	os.Setenv("MODEL_PATH", "/opt/artifacts/forest.json")
	os.Setenv("MODEL_URL", "https://models.example.com/forest.json")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("MODEL_PATH")
		os.Unsetenv("MODEL_URL")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Model.ModelPath != "/opt/artifacts/forest.json" {
		t.Errorf("Model.ModelPath = %q, want %q", cfg.Model.ModelPath, "/opt/artifacts/forest.json")
	}
	if cfg.Model.ModelURL != "https://models.example.com/forest.json" {
		t.Errorf("Model.ModelURL = %q, want custom URL", cfg.Model.ModelURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	os.Setenv("SERVER_PORT", "invalid")
	defer os.Unsetenv("SERVER_PORT")

	_, err := LoadConfig()
	if err == nil {
		t.Error("expected error for invalid SERVER_PORT")
	}
}
