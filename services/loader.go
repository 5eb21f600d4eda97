package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"windpower-prediction-api/config"
)

// ArtifactLoader resolves the model and scaler artifacts at startup. It
// prefers the configured local paths; when a path is missing and a remote URL
// is configured, it downloads into the cache directory first. The download
// path is mutex-guarded so concurrent callers never fetch the same artifact
// twice.
type ArtifactLoader struct {
	cfg    config.ModelConfig
	client *http.Client
	log    *zap.SugaredLogger
	mu     sync.Mutex
}

func NewArtifactLoader(cfg config.ModelConfig, log *zap.SugaredLogger) *ArtifactLoader {
	return &ArtifactLoader{
		cfg:    cfg,
		client: http.DefaultClient,
		log:    log,
	}
}

// LoadForest reads, decodes and validates the model artifact.
func (l *ArtifactLoader) LoadForest(ctx context.Context) (*Forest, error) {
	path, err := l.ensureLocal(ctx, l.cfg.ModelPath, l.cfg.ModelURL)
	if err != nil {
		return nil, fmt.Errorf("resolve model artifact: %w", err)
	}

	var forest Forest
	if err := decodeJSONFile(path, &forest); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if err := forest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	l.log.Infow("model artifact loaded", "path", path, "trees", len(forest.Trees))
	return &forest, nil
}

// LoadScaler reads, decodes and validates the scaler artifact.
func (l *ArtifactLoader) LoadScaler(ctx context.Context) (*Scaler, error) {
	path, err := l.ensureLocal(ctx, l.cfg.ScalerPath, l.cfg.ScalerURL)
	if err != nil {
		return nil, fmt.Errorf("resolve scaler artifact: %w", err)
	}

	var scaler Scaler
	if err := decodeJSONFile(path, &scaler); err != nil {
		return nil, fmt.Errorf("decode scaler artifact %s: %w", path, err)
	}
	if err := scaler.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scaler artifact %s: %w", path, err)
	}
	l.log.Infow("scaler artifact loaded", "path", path)
	return &scaler, nil
}

// ensureLocal returns a readable local path for the artifact, downloading it
// into the cache directory when only a URL is available.
func (l *ArtifactLoader) ensureLocal(ctx context.Context, path, url string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if url == "" {
		return "", fmt.Errorf("artifact %s not found and no download URL configured", path)
	}

	cached := filepath.Join(l.cfg.CacheDir, filepath.Base(path))

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(cached); err == nil {
		l.log.Infow("artifact already cached", "path", cached)
		return cached, nil
	}
	if err := l.download(ctx, url, cached); err != nil {
		return "", err
	}
	return cached, nil
}

func (l *ArtifactLoader) download(ctx context.Context, url, dest string) error {
	l.log.Infow("downloading artifact", "url", url, "dest", dest)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	// Write to a temp file and rename so a failed download never leaves a
	// truncated artifact at the cache path.
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

func decodeJSONFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}
