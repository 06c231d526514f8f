package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tcoates/lanesync/internal/acronyms"
	"github.com/tcoates/lanesync/internal/practice"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeParseFailed = "E002" // Practice document failed to parse
	ErrCodeBadAcronyms = "E003" // Acronym table failed to load
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error

	// Practice validation errors
	ErrCodeNoSections     = "E101" // Practice has no sections
	ErrCodeUnknownKind    = "E102" // Section kind is not swim/break/group-split
	ErrCodeMissingText    = "E103" // Swim or break section has no text
	ErrCodeEmptySplit     = "E104" // Group split defines no groups
	ErrCodeDuplicateGroup = "E105" // Group name repeated within one split
	ErrCodeNestedSplit    = "E106" // Group sub-section is itself a split
	ErrCodeBadStartClock  = "E107" // Start clock is not HH:MM[:SS]
)

// LoadError represents an error that occurred while reading CLI input
// files.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadPractice reads a practice document from a YAML file.
func LoadPractice(path string) (*practice.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := ErrCodeGeneric
		if os.IsNotExist(err) {
			code = ErrCodeNotFound
		}
		return nil, &LoadError{Code: code, Path: path, Message: fmt.Sprintf("reading practice: %v", err)}
	}

	var doc practice.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: fmt.Sprintf("parsing practice: %v", err)}
	}
	return &doc, nil
}

// LoadTable resolves the acronym table for a command invocation: the
// built-in default when no path is given, otherwise a .cue or .yaml
// table file selected by extension.
func LoadTable(path string) (acronyms.Table, error) {
	if path == "" {
		return acronyms.Default(), nil
	}

	var (
		table acronyms.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		table, err = acronyms.LoadCUE(path)
	case ".yaml", ".yml":
		table, err = acronyms.LoadYAML(path)
	default:
		return acronyms.Table{}, &LoadError{
			Code:    ErrCodeBadAcronyms,
			Path:    path,
			Message: "unsupported acronym table format (want .cue or .yaml)",
		}
	}
	if err != nil {
		var tableErr *acronyms.LoadError
		if errors.As(err, &tableErr) {
			return acronyms.Table{}, &LoadError{
				Code:    ErrCodeBadAcronyms,
				Path:    path,
				Message: tableErr.Error(),
			}
		}
		return acronyms.Table{}, &LoadError{Code: ErrCodeBadAcronyms, Path: path, Message: err.Error()}
	}
	return table, nil
}

// loadInputs is the shared front half of compute, stats, and export: the
// practice document plus the resolved acronym table. Load problems are
// command errors (exit code 2).
func loadInputs(opts *RootOptions, practicePath string, formatter *OutputFormatter) (*practice.Document, acronyms.Table, error) {
	doc, err := LoadPractice(practicePath)
	if err != nil {
		return nil, acronyms.Table{}, outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded practice %q with %d section(s)", doc.Title, len(doc.Sections))

	table, err := LoadTable(opts.Acronyms)
	if err != nil {
		return nil, acronyms.Table{}, outputLoadError(formatter, err)
	}
	if opts.Acronyms != "" {
		formatter.VerboseLog("Loaded acronym table from %s", opts.Acronyms)
	}
	return doc, table, nil
}

// outputLoadError reports a load failure and converts it to a
// command-level exit error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, loadErr.Path)
		return NewExitError(ExitCommandError, loadErr.Error())
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "loading input", err)
}
