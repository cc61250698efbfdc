package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var ErrNotFound = fmt.Errorf("file %w", apperr.ErrNotFound)

// Storage keeps uploaded documents (quotes, bills, letterhead, plans).
type Storage interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, name string) ([]byte, error)
}

// Local stores files under a root directory and serves them from baseURL.
type Local struct {
	root    string
	baseURL string
}

func NewLocal(root, baseURL string) *Local {
	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes data at name (a slash separated relative path) and returns its public URL.
func (l *Local) Save(_ context.Context, name string, data []byte) (string, error) {
	full, err := l.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return l.baseURL + "/" + (&url.URL{Path: path.Clean(name)}).EscapedPath(), nil
}

func (l *Local) Open(_ context.Context, name string) ([]byte, error) {
	full, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}

		return nil, fmt.Errorf("reading file: %w", err)
	}

	return data, nil
}

// resolve rejects names escaping the storage root.
func (l *Local) resolve(name string) (string, error) {
	clean := path.Clean("/" + name)
	if clean == "/" {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}
