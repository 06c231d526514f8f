package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcoates/lanesync/internal/practice"
)

// ValidationError is one structural problem found in a practice document.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <practice.yaml>",
		Short: "Check a practice document for structural problems",
		Long: `Check a practice document without computing its schedule.

The engine itself is fail-soft and degrades malformed input to zero
values; validate surfaces those problems instead, so authors find a
mistyped section kind or an empty group split before practice time.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, practicePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	doc, err := LoadPractice(practicePath)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Validating practice %q", doc.Title)

	errs := ValidatePractice(doc)
	if len(errs) > 0 {
		return outputValidationErrors(formatter, errs)
	}
	return outputValidateSuccess(formatter)
}

// startClockRe accepts the authored start clock forms: HH:MM with an
// optional seconds field.
var startClockRe = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// ValidatePractice runs every structural check over a practice document
// and returns all problems found.
func ValidatePractice(doc *practice.Document) []ValidationError {
	var errs []ValidationError
	add := func(code, field, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if start := strings.TrimSpace(doc.StartClock); start != "" && !startClockRe.MatchString(start) {
		add(ErrCodeBadStartClock, "start", "start clock %q is not HH:MM or HH:MM:SS", doc.StartClock)
	}

	if len(doc.Sections) == 0 {
		add(ErrCodeNoSections, "sections", "practice has no sections")
		return errs
	}

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		field := fmt.Sprintf("sections[%d]", i)

		switch sec.Kind {
		case practice.KindSwim, practice.KindBreak:
			if strings.TrimSpace(sec.RawText) == "" {
				add(ErrCodeMissingText, field, "%s section %q has no text", sec.Kind, sec.Title)
			}
		case practice.KindGroupSplit:
			validateSplit(sec, field, add)
		default:
			add(ErrCodeUnknownKind, field, "unknown section kind %q", sec.Kind)
		}
	}
	return errs
}

func validateSplit(sec *practice.Section, field string, add func(code, field, format string, args ...any)) {
	if len(sec.Groups) == 0 {
		add(ErrCodeEmptySplit, field, "group split %q defines no groups", sec.Title)
		return
	}

	seen := make(map[string]bool)
	for gi := range sec.Groups {
		group := &sec.Groups[gi]
		groupField := fmt.Sprintf("%s.groups[%d]", field, gi)

		if seen[group.Name] {
			add(ErrCodeDuplicateGroup, groupField, "group name %q repeated within one split", group.Name)
		}
		seen[group.Name] = true

		for si := range group.Sections {
			sub := &group.Sections[si]
			subField := fmt.Sprintf("%s.sections[%d]", groupField, si)
			switch sub.Kind {
			case practice.KindSwim:
				if strings.TrimSpace(sub.RawText) == "" {
					add(ErrCodeMissingText, subField, "swim section %q has no text", sub.Title)
				}
			case practice.KindGroupSplit:
				add(ErrCodeNestedSplit, subField, "group splits cannot nest")
			default:
				add(ErrCodeUnknownKind, subField, "group sections must be swim sections, got %q", sub.Kind)
			}
		}
	}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ Practice valid")
	return nil
}

// outputValidationErrors outputs every validation failure. Validation
// failures exit 1; they are findings, not command errors.
func outputValidationErrors(formatter *OutputFormatter, errs []ValidationError) error {
	if formatter.Format == "json" {
		_ = formatter.Error(errs[0].Code, errs[0].Message, ValidationResult{Valid: false, Errors: errs})
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "%s\n  %s: %s\n\n", err.Field, err.Code, err.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
