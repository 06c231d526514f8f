package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPractice(t *testing.T) {
	doc, err := LoadPractice(writePractice(t, samplePractice))
	require.NoError(t, err)
	assert.Equal(t, "Tuesday AM", doc.Title)
	assert.Equal(t, "06:00", doc.StartClock)
	assert.Len(t, doc.Sections, 2)
}

func TestLoadPracticeNotFound(t *testing.T) {
	_, err := LoadPractice(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadPracticeBadYAML(t *testing.T) {
	_, err := LoadPractice(writePractice(t, "sections: [}"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}

func TestLoadTableDefault(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Contains(t, table.Strokes, "Freestyle")
	assert.Contains(t, table.Styles, "Kick")
}

func TestLoadTableYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yml")
	content := `
strokes:
  Sprint: [sp]
styles:
  Easy: [ez]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sp"}, table.Strokes["Sprint"])
	assert.Equal(t, []string{"ez"}, table.Styles["Easy"])
}

func TestLoadTableCUE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.cue")
	content := `
strokes: {
	Sprint: ["sp"]
}
styles: {
	Easy: ["ez"]
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sp"}, table.Strokes["Sprint"])
	assert.Equal(t, []string{"ez"}, table.Styles["Easy"])
}

func TestLoadTableUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := LoadTable(path)
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBadAcronyms, loadErr.Code)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "absent.cue"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBadAcronyms, loadErr.Code)
}
