package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/placewise/backend/pkg/config"
)

// LocalImageStore saves uploaded images on local disk and serves them under
// a public URL prefix.
type LocalImageStore struct {
	dir        string
	publicPath string
}

// NewLocalImageStore creates the upload directory if needed
func NewLocalImageStore(cfg config.UploadsConfig) (*LocalImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalImageStore{
		dir:        cfg.Dir,
		publicPath: strings.TrimSuffix(cfg.PublicPath, "/"),
	}, nil
}

// Save stores one image under a random name, keeping the original extension
func (s *LocalImageStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	target := filepath.Join(s.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Dir returns the directory files are stored in, for static file serving
func (s *LocalImageStore) Dir() string {
	return s.dir
}
