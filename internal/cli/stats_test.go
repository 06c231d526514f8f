package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsTextOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewStatsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice)})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Strokes:")
	assert.Contains(t, output, "Freestyle")
	assert.Contains(t, output, "1400 yd")
	assert.Contains(t, output, "Styles:")
	assert.Contains(t, output, "Swim")
}

func TestStatsCombinedStyles(t *testing.T) {
	practiceYAML := `
title: Drill Day
start: "06:00"
sections:
  - kind: swim
    title: Drills
    text: "4x50 K/S/D/S @ :50"
`
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewStatsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, practiceYAML)})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	styles := data["stats"].(map[string]any)["styles"].(map[string]any)
	assert.Equal(t, float64(50), styles["Kick"])
	assert.Equal(t, float64(50), styles["Drill"])
	assert.Equal(t, float64(100), styles["Swim"])
}

func TestStatsPerGroupBreakdown(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewStatsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, splitPractice)})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Group A")
	assert.Contains(t, output, "Group B")
	// Shared warmdown counts into both groups.
	assert.Contains(t, output, "400 yd")
	assert.Contains(t, output, "500 yd")
}

func TestStatsFractionalYardage(t *testing.T) {
	practiceYAML := `
title: Thirds
start: "06:00"
sections:
  - kind: swim
    title: Mixed
    text: "100 free back fly"
`
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewStatsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, practiceYAML)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "33.33 yd")
}
