// Package upload validates and stores uploaded images on the local object root.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxFileSize is the upload size ceiling (5 MiB).
const MaxFileSize = 5 << 20

// PublicPrefix is the URL path the stored objects are served under.
const PublicPrefix = "/uploads"

var (
	// ErrUploadsDisabled is returned when no upload root is configured.
	ErrUploadsDisabled = errors.New("uploads are disabled: no upload root configured")
	// ErrFileTypeNotAllowed is returned for MIME types outside the allow-list.
	ErrFileTypeNotAllowed = errors.New("file type not allowed: only jpeg, png, gif and webp images are accepted")
	// ErrFileTooLarge is returned when the file exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file too large: the limit is 5 MiB")
	// ErrFileEmpty is returned for zero-byte uploads.
	ErrFileEmpty = errors.New("file is empty")
)

// allowedTypes is the MIME allow-list for uploaded images.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Service writes validated upload objects below a local root directory.
// Orphaned objects are never cleaned up.
type Service struct {
	root string
}

// New creates an upload service. An empty root disables uploads.
func New(root string) *Service {
	return &Service{root: root}
}

// Enabled reports whether an upload root is configured.
func (s *Service) Enabled() bool {
	return s.root != ""
}

// Store validates the file and writes it under root/folder/key, returning
// the public URL of the stored object. The key combines a millisecond
// timestamp with the sanitized original filename.
func (s *Service) Store(folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !s.Enabled() {
		return "", ErrUploadsDisabled
	}

	if !allowedTypes[strings.ToLower(contentType)] {
		return "", ErrFileTypeNotAllowed
	}

	if size <= 0 {
		return "", ErrFileEmpty
	}

	if size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	folder = sanitizeFolder(folder)
	key := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeName(filename))

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// the declared size was checked above; cap the copy anyway in case the
	// stream is longer than declared
	written, err := io.Copy(dst, io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	if written > MaxFileSize {
		_ = os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return PublicPrefix + "/" + folder + "/" + key, nil
}

// Root returns the local object root for static serving.
func (s *Service) Root() string {
	return s.root
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")

	if name == "" || name == "." {
		name = "file"
	}

	return name
}

func sanitizeFolder(folder string) string {
	folder = unsafeChars.ReplaceAllString(folder, "_")
	folder = strings.Trim(folder, "._")

	if folder == "" {
		return "misc"
	}

	return folder
}
