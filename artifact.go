package reportpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// artifactStore persists generated PDFs in a spool directory and removes
// them once they have been served. Files are named with a UUID so
// concurrent generations never collide; the client-facing filename is
// carried separately in Document.
type artifactStore struct {
	dir   string
	grace time.Duration
}

// newArtifactStore creates the spool directory if needed.
func newArtifactStore(dir string, grace time.Duration) (*artifactStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpoolDir, err)
	}

	return &artifactStore{dir: dir, grace: grace}, nil
}

// Write stores pdfData under a fresh UUID name and returns the full path.
func (s *artifactStore) Write(pdfData []byte) (string, error) {
	path := filepath.Join(s.dir, uuid.NewString()+".pdf")

	if err := os.WriteFile(path, pdfData, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}

	return path, nil
}

// ScheduleRemoval deletes path after the store's grace period. The delay
// gives the HTTP layer time to finish streaming the file to the client.
// Removal failures are ignored; the periodic sweep catches leftovers.
func (s *artifactStore) ScheduleRemoval(path string) {
	time.AfterFunc(s.grace, func() {
		_ = os.Remove(path)
	})
}

// Sweep removes spooled PDFs older than maxAge and reports how many were
// deleted. Files that are not PDFs are left alone so the spool directory
// can be shared with other tooling.
func (s *artifactStore) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSpoolDir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}
