package acronyms

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// LoadCUE loads an acronym table from a CUE file. Uses the CUE SDK's Go
// API directly (not CLI subprocess).
//
// The file declares two optional top-level structs:
//
//	strokes: {
//		Freestyle: ["free", "fr", "freestyle"]
//	}
//	styles: {
//		Kick: ["kick", "k"]
//	}
//
// Missing structs yield empty mappings - the engine's Choice/Swim
// fallback handles the rest.
func LoadCUE(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &LoadError{
			Field:   "file",
			Message: fmt.Sprintf("reading %s: %v", path, err),
		}
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return Table{}, formatCUEError(err)
	}

	table := Table{}
	table.Strokes, err = parseMapping(v, "strokes")
	if err != nil {
		return Table{}, err
	}
	table.Styles, err = parseMapping(v, "styles")
	if err != nil {
		return Table{}, err
	}
	return table, nil
}

// parseMapping extracts one category -> token list struct.
func parseMapping(v cue.Value, field string) (map[string][]string, error) {
	out := make(map[string][]string)

	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return out, nil
	}

	iter, err := fieldVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	for iter.Next() {
		name := iter.Label()

		listIter, err := iter.Value().List()
		if err != nil {
			return nil, &LoadError{
				Field:   fmt.Sprintf("%s.%s", field, name),
				Message: "must be a list of token strings",
				Pos:     iter.Value().Pos(),
			}
		}

		var tokens []string
		for listIter.Next() {
			tok, err := listIter.Value().String()
			if err != nil {
				return nil, &LoadError{
					Field:   fmt.Sprintf("%s.%s", field, name),
					Message: "tokens must be strings",
					Pos:     listIter.Value().Pos(),
				}
			}
			tokens = append(tokens, tok)
		}
		out[name] = tokens
	}

	return out, nil
}

// LoadError represents an acronym table loading error with source position.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors; surface the first with a
	// usable position.
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
