package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSave_WritesFileUnderProjectDir(t *testing.T) {
	t.Parallel()

	store := NewLocalStore(t.TempDir())
	projectID := uuid.New()

	ref, err := store.Save(projectID, "report.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))

	require.Contains(t, ref, filepath.Join("projects", projectID.String()))
	require.True(t, strings.HasSuffix(ref, "_report.pdf"))
}

func TestSave_SameNameNeverCollides(t *testing.T) {
	t.Parallel()

	store := NewLocalStore(t.TempDir())
	projectID := uuid.New()

	ref1, err := store.Save(projectID, "spec.docx", strings.NewReader("first"))
	require.NoError(t, err)
	ref2, err := store.Save(projectID, "spec.docx", strings.NewReader("second"))
	require.NoError(t, err)

	require.NotEqual(t, ref1, ref2)

	first, err := os.ReadFile(ref1)
	require.NoError(t, err)
	second, err := os.ReadFile(ref2)
	require.NoError(t, err)
	require.Equal(t, "first", string(first))
	require.Equal(t, "second", string(second))
}

func TestSave_StripsClientDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewLocalStore(root)

	ref, err := store.Save(uuid.New(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, root))
	require.True(t, strings.HasSuffix(ref, "_passwd"))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Remove(filepath.Join(t.TempDir(), "absent")))
}
