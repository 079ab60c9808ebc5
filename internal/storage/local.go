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
)

// Local stores uploads on the local filesystem under a single directory
// that the HTTP server exposes statically.
type Local struct {
	dir        string
	publicPath string
}

// NewLocal creates the uploads directory if needed and returns the store.
func NewLocal(dir, publicPath string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create uploads dir: %w", err)
	}
	return &Local{dir: dir, publicPath: publicPath}, nil
}

// Save writes the upload under a random name, keeping the original extension,
// and returns the public URL path.
func (l *Local) Save(_ context.Context, up Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, up.Content); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return path.Join(l.publicPath, name), nil
}

// Remove deletes the file behind a URL previously returned by Save. URLs
// outside the public path and already-missing files are not errors.
func (l *Local) Remove(_ context.Context, url string) error {
	if !strings.HasPrefix(url, l.publicPath+"/") {
		return nil
	}

	name := path.Base(url)
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	if err := os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

// Dir returns the directory files are written to, for static serving.
func (l *Local) Dir() string { return l.dir }
