package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"windpower-prediction-api/config"
)

func writeArtifact(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func newTestLoader(cfg config.ModelConfig) *ArtifactLoader {
	return NewArtifactLoader(cfg, zap.NewNop().Sugar())
}

func TestLoadFromLocalPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := config.ModelConfig{
		ModelPath:  writeArtifact(t, dir, "model.json", testForest(leafTree(0.5))),
		ScalerPath: writeArtifact(t, dir, "scaler.json", identityScaler()),
		CacheDir:   filepath.Join(dir, "cache"),
	}
	loader := newTestLoader(cfg)

	forest, err := loader.LoadForest(context.Background())
	if err != nil {
		t.Fatalf("LoadForest() error: %v", err)
	}
	if len(forest.Trees) != 1 {
		t.Errorf("loaded forest has %d trees, want 1", len(forest.Trees))
	}

	scaler, err := loader.LoadScaler(context.Background())
	if err != nil {
		t.Fatalf("LoadScaler() error: %v", err)
	}
	if len(scaler.Mean) != FeatureCount {
		t.Errorf("loaded scaler has %d means, want %d", len(scaler.Mean), FeatureCount)
	}
}

func TestLoadMissingNoURL(t *testing.T) {
	dir := t.TempDir()
	loader := newTestLoader(config.ModelConfig{
		ModelPath: filepath.Join(dir, "absent.json"),
		CacheDir:  filepath.Join(dir, "cache"),
	})

	if _, err := loader.LoadForest(context.Background()); err == nil {
		t.Error("expected error when artifact is absent and no URL is configured")
	}
}

func TestLoadRejectsInvalidArtifact(t *testing.T) {
	dir := t.TempDir()

	broken := testForest(leafTree(0.5))
	broken.FeatureNames = []string{"only_one"}
	loader := newTestLoader(config.ModelConfig{
		ModelPath: writeArtifact(t, dir, "model.json", broken),
		CacheDir:  filepath.Join(dir, "cache"),
	})

	if _, err := loader.LoadForest(context.Background()); err == nil {
		t.Error("expected error for artifact with wrong feature names")
	}
}

func TestLoadDownloadsAndCaches(t *testing.T) {
	dir := t.TempDir()

	var fetches int64
	data, err := json.Marshal(identityScaler())
	if err != nil {
		t.Fatalf("marshal scaler: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&fetches, 1)
		w.Write(data)
	}))
	defer srv.Close()

	cfg := config.ModelConfig{
		ScalerPath: filepath.Join(dir, "absent", "scaler.json"),
		ScalerURL:  srv.URL + "/scaler.json",
		CacheDir:   filepath.Join(dir, "cache"),
	}
	loader := newTestLoader(cfg)

	if _, err := loader.LoadScaler(context.Background()); err != nil {
		t.Fatalf("LoadScaler() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.CacheDir, "scaler.json")); err != nil {
		t.Errorf("downloaded artifact not cached: %v", err)
	}

	// Second load must hit the cache, not the server.
	if _, err := loader.LoadScaler(context.Background()); err != nil {
		t.Fatalf("second LoadScaler() error: %v", err)
	}
	if got := atomic.LoadInt64(&fetches); got != 1 {
		t.Errorf("server fetched %d times, want 1", got)
	}
}

func TestLoadDownloadBadStatus(t *testing.T) {
	dir := t.TempDir()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	loader := newTestLoader(config.ModelConfig{
		ScalerPath: filepath.Join(dir, "absent", "scaler.json"),
		ScalerURL:  srv.URL + "/scaler.json",
		CacheDir:   filepath.Join(dir, "cache"),
	})

	if _, err := loader.LoadScaler(context.Background()); err == nil {
		t.Error("expected error for 404 download")
	}
}
