package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finadvisor/finadvisor/internal/common"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	content := []byte("fake pdf bytes")
	saved, err := store.Save("Bank Statement.PDF", strings.NewReader(string(content)))
	require.NoError(t, err)

	assert.Equal(t, "pdf", saved.Ext)
	assert.Equal(t, int64(len(content)), saved.Size)

	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), saved.HashHex)

	// Stored under the token, not the client filename.
	assert.Equal(t, filepath.Join(dir, saved.Token.String()+".pdf"), saved.Path)
	got, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	saved.Remove()
	_, err = os.Stat(saved.Path)
	assert.True(t, os.IsNotExist(err))

	// Remove is safe to call twice.
	saved.Remove()
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	for _, name := range []string{"notes.txt", "archive.zip", "noext", "script.pdf.exe"} {
		_, err := store.Save(name, strings.NewReader("x"))
		require.Error(t, err, name)
		assert.Equal(t, common.KindUnsupportedFormat, common.KindOf(err), name)
	}
}

func TestSaveIdenticalFilenamesDoNotCollide(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	a, err := store.Save("scan.png", strings.NewReader("first"))
	require.NoError(t, err)
	b, err := store.Save("scan.png", strings.NewReader("second"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)

	gotA, _ := os.ReadFile(a.Path)
	gotB, _ := os.ReadFile(b.Path)
	assert.Equal(t, "first", string(gotA))
	assert.Equal(t, "second", string(gotB))
}
