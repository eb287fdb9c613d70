package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidPath = errors.New("storage: path escapes root")

// Store is the blob-store boundary: write bytes under a namespaced path
// and get back a retrievable URL, or delete a previously written blob.
// Paths are namespaced by owner id and entity type, e.g.
// "studio-images/42" or "workshops/42/1712_poster.jpg". PathFromURL
// inverts Save so callers can delete a blob they only know by URL.
type Store interface {
	Save(path string, r io.Reader) (url string, err error)
	Delete(path string) error
	PathFromURL(url string) string
}

// Local keeps blobs on disk under Root and serves them below BaseURL
// (gin's static route in cmd/api).
type Local struct {
	Root    string
	BaseURL string
}

func NewLocal(root, baseURL string) *Local {
	return &Local{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Save(path string, r io.Reader) (string, error) {
	full, err := l.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}

	return l.BaseURL + "/" + filepath.ToSlash(path), nil
}

func (l *Local) Delete(path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// PathFromURL maps a URL issued by Save back to its storage path.
// Returns "" for URLs this store did not issue.
func (l *Local) PathFromURL(url string) string {
	prefix := l.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}

func (l *Local) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		return "", ErrInvalidPath
	}
	return filepath.Join(l.Root, clean), nil
}
