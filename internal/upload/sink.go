package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested upload does not resolve to a file
// inside the storage directory.
var ErrNotFound = errors.New("upload not found")

// Sink stores poster uploads under collision-free names and resolves them
// back for serving. Every stored name is a fresh uuid plus a sanitized copy
// of the original filename, so concurrent uploads never need locking.
type Sink struct {
	dir       string
	urlPrefix string
}

func NewSink(dir, urlPrefix string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Sink{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *Sink) Dir() string {
	return s.dir
}

// Store writes the uploaded file and returns its serving URL. A nil header or
// one without a filename is the legitimate "no poster" case, not an error.
// A partial write is removed before the error is returned so no record can
// ever reference it.
func (s *Sink) Store(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(file.Filename))
	dst := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded poster: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create poster file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to save poster: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to save poster: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

// Resolve maps a stored name back to its path on disk. Names that escape the
// storage directory are rejected as not found, never served.
func (s *Sink) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	full := filepath.Clean(filepath.Join(s.dir, name))
	if !strings.HasPrefix(full, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return "", ErrNotFound
	}

	info, err := os.Stat(full)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat upload: %w", err)
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return full, nil
}

// sanitizeFilename strips directory components and traversal sequences from a
// caller-supplied name. The raw name is never used to build a path.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
