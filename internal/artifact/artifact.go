package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Document is one rendered proposal: the PDF bytes plus a preview file on
// disk that an external viewer can open. Immutable after creation.
type Document struct {
	Data        []byte
	PreviewPath string
	GeneratedAt time.Time

	releaseOnce sync.Once
}

// SaveTo writes the document into dir under the download filename
// proposta-comercial-folhita-{timestamp}.pdf and returns the full path.
func (d *Document) SaveTo(dir string) (string, error) {
	name := fmt.Sprintf("proposta-comercial-folhita-%d.pdf", d.GeneratedAt.UnixMilli())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return "", fmt.Errorf("salvando pdf: %w", err)
	}
	return path, nil
}

// release removes the preview file. Safe to call more than once; only the
// first call touches the filesystem.
func (d *Document) release() {
	d.releaseOnce.Do(func() {
		if d.PreviewPath != "" {
			os.Remove(d.PreviewPath)
		}
	})
}

// Store holds at most one rendered document for the session. Replacing the
// current document releases the previous preview so repeated generations do
// not accumulate files.
type Store struct {
	mu      sync.Mutex
	current *Document
	now     func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Current returns the most recently stored document, or nil.
func (s *Store) Current() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Replace stores a freshly rendered PDF: it writes a new preview file,
// releases the previous document's preview, and returns the new document.
func (s *Store) Replace(data []byte) (*Document, error) {
	f, err := os.CreateTemp("", "catalogo-preview-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("criando preview: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("escrevendo preview: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("escrevendo preview: %w", err)
	}

	doc := &Document{
		Data:        data,
		PreviewPath: f.Name(),
		GeneratedAt: s.now(),
	}

	s.mu.Lock()
	prev := s.current
	s.current = doc
	s.mu.Unlock()

	if prev != nil {
		prev.release()
	}
	return doc, nil
}

// Close releases the current document's preview, if any.
func (s *Store) Close() {
	s.mu.Lock()
	cur := s.current
	s.current = nil
	s.mu.Unlock()

	if cur != nil {
		cur.release()
	}
}
