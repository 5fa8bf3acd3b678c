package artifact

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestReplace_StoresDocumentWithPreview(t *testing.T) {
	s := NewStore()
	defer s.Close()

	doc, err := s.Replace([]byte("%PDF-1.3 fake"))
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.3 fake"), doc.Data)
	assert.True(t, fileExists(doc.PreviewPath))
	assert.Same(t, doc, s.Current())

	data, err := os.ReadFile(doc.PreviewPath)
	require.NoError(t, err)
	assert.Equal(t, doc.Data, data)
}

func TestReplace_ReleasesPreviousPreview(t *testing.T) {
	s := NewStore()
	defer s.Close()

	first, err := s.Replace([]byte("first"))
	require.NoError(t, err)
	second, err := s.Replace([]byte("second"))
	require.NoError(t, err)

	assert.False(t, fileExists(first.PreviewPath), "previous preview must be released")
	assert.True(t, fileExists(second.PreviewPath))
	assert.Same(t, second, s.Current())
}

func TestRelease_ExactlyOnce(t *testing.T) {
	s := NewStore()
	doc, err := s.Replace([]byte("data"))
	require.NoError(t, err)

	// Recreate the path after the first release; a second release must not
	// remove it again.
	doc.release()
	require.NoError(t, os.WriteFile(doc.PreviewPath, []byte("sentinel"), 0o644))
	doc.release()
	assert.True(t, fileExists(doc.PreviewPath))
	os.Remove(doc.PreviewPath)
}

func TestClose_ReleasesCurrent(t *testing.T) {
	s := NewStore()
	doc, err := s.Replace([]byte("data"))
	require.NoError(t, err)

	s.Close()
	assert.False(t, fileExists(doc.PreviewPath))
	assert.Nil(t, s.Current())

	// Close on an empty store is a no-op.
	s.Close()
}

func TestSaveTo_DownloadFilename(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.UnixMilli(1756500000000) }
	defer s.Close()

	doc, err := s.Replace([]byte("pdf bytes"))
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := doc.SaveTo(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "proposta-comercial-folhita-1756500000000.pdf"), path)
	assert.Regexp(t, regexp.MustCompile(`proposta-comercial-folhita-\d+\.pdf$`), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)
}

func TestSaveTo_BadDirectory(t *testing.T) {
	s := NewStore()
	defer s.Close()
	doc, err := s.Replace([]byte("pdf"))
	require.NoError(t, err)

	_, err = doc.SaveTo(filepath.Join(t.TempDir(), "missing", "nested"))
	assert.Error(t, err)
}
