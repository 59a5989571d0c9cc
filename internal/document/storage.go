package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const leaseFilename = "lease.pdf"

// Storage publishes rendered artifacts to the filesystem under a stable
// per-contract path. Publication is atomic: bytes are written to a temporary
// file and renamed into place, so a failed render never corrupts the
// previously published artifact.
type Storage struct {
	dir     string
	baseURL string
}

func NewStorage(dir, baseURL string) *Storage {
	return &Storage{dir: dir, baseURL: baseURL}
}

func (s *Storage) Publish(contractID uuid.UUID, pdf []byte) (string, error) {
	dir := filepath.Join(s.dir, contractID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "lease-*.pdf.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temporary artifact: %w", err)
	}

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return "", fmt.Errorf("writing artifact: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, leaseFilename)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publishing artifact: %w", err)
	}

	return s.URL(contractID), nil
}

// URL derives the stable reference for a contract's lease document.
func (s *Storage) URL(contractID uuid.UUID) string {
	if s.baseURL == "" {
		return filepath.Join(s.dir, contractID.String(), leaseFilename)
	}

	return fmt.Sprintf("%s/contracts/%s/%s", s.baseURL, contractID, leaseFilename)
}
