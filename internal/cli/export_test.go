package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFixedDocID pins the export ID for the duration of one test.
func withFixedDocID(t *testing.T, id string) {
	t.Helper()
	prev := docIDSource
	docIDSource = FixedGenerator{ID: id}
	t.Cleanup(func() { docIDSource = prev })
}

func TestExportToStdout(t *testing.T) {
	withFixedDocID(t, "test-doc-id")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice)})

	require.NoError(t, cmd.Execute())

	var export ExportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Equal(t, "test-doc-id", export.ID)
	assert.Equal(t, "Tuesday AM", export.Title)
	assert.Contains(t, string(export.Result), `"elapsed_seconds":1260`)
}

func TestExportToFile(t *testing.T) {
	withFixedDocID(t, "test-doc-id")
	outPath := filepath.Join(t.TempDir(), "export.json")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice), "-o", outPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Exported practice test-doc-id")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var export ExportDocument
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "test-doc-id", export.ID)
}

func TestExportJSONResponse(t *testing.T) {
	withFixedDocID(t, "test-doc-id")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewExportCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice)})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "test-doc-id", data["id"])
}

func TestUUIDv7GeneratorProducesValidIDs(t *testing.T) {
	gen := UUIDv7Generator{}

	first, err := gen.NewID()
	require.NoError(t, err)
	second, err := gen.NewID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, id := range []string{first, second} {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}
}
