// Package storage persists uploaded vehicle images and hands back the public
// URL the site serves them from. Two implementations exist: a local-disk
// store for single-host deployments (the default) and an S3 store for
// object-storage backends. Both are selected from config in the entrypoint.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageStore saves an image stream under a server-assigned name and returns
// the URL it will be publicly reachable at.
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// Local writes images under Dir and returns BaseURL-prefixed URLs. The
// router serves Dir at the matching path, so with the default BaseURL
// "/uploads" the returned URLs resolve against the same host.
type Local struct {
	Dir     string
	BaseURL string
}

// NewLocal creates the upload directory if missing and returns the store.
func NewLocal(dir, baseURL string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: upload dir must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &Local{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save streams r to a file named name inside the store directory. The name
// must be a bare filename; anything resolving outside Dir is rejected. The
// write goes through a temp file and rename so a failed upload never leaves
// a half-written image at the public path.
func (l *Local) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("storage: invalid image name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(l.Dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: close image: %w", err)
	}

	dst := filepath.Join(l.Dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("storage: place image: %w", err)
	}
	return l.BaseURL + "/" + name, nil
}
