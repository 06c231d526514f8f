package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcoates/lanesync/internal/practice"
)

func TestValidateValidPractice(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Practice valid")
}

func TestValidateValidPracticeJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, samplePractice)})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateInvalidPractice(t *testing.T) {
	invalid := `
title: Broken
start: "six am"
sections:
  - kind: swim
    title: Empty
    text: ""
  - kind: warmup
    title: Typo
    text: "100 free"
  - kind: group-split
    title: Nobody
    groups: []
`
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{writePractice(t, invalid)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "validation failed")

	output := buf.String()
	assert.Contains(t, output, "✗ Validation failed")
	assert.Contains(t, output, "E107") // bad start clock
	assert.Contains(t, output, "E103") // missing text
	assert.Contains(t, output, "E102") // unknown kind
	assert.Contains(t, output, "E104") // empty split
}

func TestValidateMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/practice.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E005")
}

func TestValidatePracticeChecks(t *testing.T) {
	tests := []struct {
		name     string
		doc      practice.Document
		wantCode string
	}{
		{
			name:     "no sections",
			doc:      practice.Document{},
			wantCode: ErrCodeNoSections,
		},
		{
			name: "duplicate group names",
			doc: practice.Document{Sections: []practice.Section{{
				Kind:  practice.KindGroupSplit,
				Title: "Main",
				Groups: []practice.Group{
					{Name: "A", Sections: []practice.Section{{Kind: practice.KindSwim, Title: "x", RawText: "100"}}},
					{Name: "A", Sections: []practice.Section{{Kind: practice.KindSwim, Title: "y", RawText: "200"}}},
				},
			}}},
			wantCode: ErrCodeDuplicateGroup,
		},
		{
			name: "nested split",
			doc: practice.Document{Sections: []practice.Section{{
				Kind:  practice.KindGroupSplit,
				Title: "Main",
				Groups: []practice.Group{
					{Name: "A", Sections: []practice.Section{{Kind: practice.KindGroupSplit, Title: "inner"}}},
				},
			}}},
			wantCode: ErrCodeNestedSplit,
		},
		{
			name: "break inside group",
			doc: practice.Document{Sections: []practice.Section{{
				Kind:  practice.KindGroupSplit,
				Title: "Main",
				Groups: []practice.Group{
					{Name: "A", Sections: []practice.Section{{Kind: practice.KindBreak, Title: "rest", RawText: "1:00"}}},
				},
			}}},
			wantCode: ErrCodeUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePractice(&tt.doc)
			require.NotEmpty(t, errs)

			codes := make([]string, len(errs))
			for i, e := range errs {
				codes[i] = e.Code
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestValidatePracticeAcceptsSecondsStartClock(t *testing.T) {
	doc := practice.Document{
		StartClock: "05:45:30",
		Sections: []practice.Section{
			{Kind: practice.KindSwim, Title: "Main", RawText: "100 free"},
		},
	}
	assert.Empty(t, ValidatePractice(&doc))
}
