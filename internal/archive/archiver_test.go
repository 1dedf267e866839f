package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func TestMaterializeWritesFilesAndArchive(t *testing.T) {
	archiver := NewArchiver(t.TempDir())

	files := types.FileMapping{
		"index.html":         "<html></html>",
		"src/pages/Home.jsx": "export default function Home() {}",
	}

	project, err := archiver.Materialize(files, "My Site")
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)
	assert.Contains(t, filepath.Base(project.Dir), "My_Site-")

	// Files on disk, nested directories included.
	content, err := os.ReadFile(filepath.Join(project.Dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))
	_, err = os.Stat(filepath.Join(project.Dir, "src", "pages", "Home.jsx"))
	require.NoError(t, err)

	// Archive holds the same entries.
	reader, err := zip.OpenReader(project.ArchivePath)
	require.NoError(t, err)
	defer reader.Close()

	entries := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(data)
	}
	assert.Equal(t, map[string]string{
		"index.html":         "<html></html>",
		"src/pages/Home.jsx": "export default function Home() {}",
	}, entries)
}

func TestMaterializeRejectsTraversal(t *testing.T) {
	archiver := NewArchiver(t.TempDir())

	_, err := archiver.Materialize(types.FileMapping{"../evil.txt": "x"}, "site")
	require.Error(t, err)

	_, err = archiver.Materialize(types.FileMapping{"/etc/passwd": "x"}, "site")
	require.Error(t, err)
}

func TestLookupAndPreviewPath(t *testing.T) {
	archiver := NewArchiver(t.TempDir())

	project, err := archiver.Materialize(types.FileMapping{"index.html": "<html></html>"}, "site")
	require.NoError(t, err)

	found, ok := archiver.Lookup(project.ID)
	require.True(t, ok)
	assert.Equal(t, project.ArchivePath, found.ArchivePath)

	path, ok := archiver.PreviewPath(project.ID)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(project.Dir, "index.html"), path)

	// preview.html wins over index.html when both exist.
	project, err = archiver.Materialize(types.FileMapping{
		"index.html":   "<html></html>",
		"preview.html": "<html>preview</html>",
	}, "site")
	require.NoError(t, err)
	path, ok = archiver.PreviewPath(project.ID)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(project.Dir, "preview.html"), path)

	_, ok = archiver.Lookup("missing")
	assert.False(t, ok)
	_, ok = archiver.PreviewPath("missing")
	assert.False(t, ok)
}

func TestSafeRelPath(t *testing.T) {
	_, err := safeRelPath("src/App.jsx")
	assert.NoError(t, err)

	for _, bad := range []string{"", "  ", "..", "../x", "/abs/path"} {
		_, err := safeRelPath(bad)
		assert.Error(t, err, "path %q", bad)
	}
}
