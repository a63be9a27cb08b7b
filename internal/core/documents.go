package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trustrent/trustchain-backend/internal/ledger/model"
)

// DocumentStore opens stored property documents for content hashing.
type DocumentStore struct {
	root string
}

// NewDocumentStore returns a store rooted at the given media directory.
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// Open returns a reader for the named document. Failures are wrapped in
// model.ErrDocumentUnavailable so callers can treat them as non-fatal.
func (s *DocumentStore) Open(name string) (io.ReadCloser, error) {
	full := filepath.Join(s.root, name)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return nil, fmt.Errorf("%w: path %q escapes document root", model.ErrDocumentUnavailable, name)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrDocumentUnavailable, name, err)
	}
	return f, nil
}
