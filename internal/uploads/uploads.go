package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotPDF is returned for uploads whose name lacks a .pdf extension.
var ErrNotPDF = errors.New("only PDF files are accepted")

// Spool stages uploaded documents on disk while they are processed.
type Spool interface {
	// Save writes an upload to the spool directory and returns its path.
	Save(name string, data io.Reader) (string, error)
	// Remove deletes a previously spooled file.
	Remove(path string) error
}

// LocalSpool implements the Spool interface on the local filesystem.
type LocalSpool struct {
	dir string
}

// NewLocalSpool creates the spool directory if needed.
func NewLocalSpool(dir string) (*LocalSpool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalSpool{dir: dir}, nil
}

// IsPDF reports whether a file name carries a .pdf extension.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Save stores an upload under a unique name derived from the original
// one. Directory components in the name are discarded.
func (s *LocalSpool) Save(name string, data io.Reader) (string, error) {
	if !IsPDF(name) {
		return "", fmt.Errorf("%w: %s", ErrNotPDF, name)
	}

	path := filepath.Join(s.dir, uuid.New().String()+"_"+filepath.Base(name))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create spool file: %w", err)
	}

	if _, err := io.Copy(out, data); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write spool file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write spool file: %w", err)
	}

	return path, nil
}

// Remove deletes a spooled file. Missing files are not an error.
func (s *LocalSpool) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove spool file: %w", err)
	}
	return nil
}
