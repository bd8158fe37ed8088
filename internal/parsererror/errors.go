package parsererror

import "fmt"

// ParseError represents a field that could not be parsed while reading a ledger file.
type ParseError struct {
	Parser string
	Line   int // 1-based; 0 when not tied to a file line
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: failed to parse %s='%s': %v",
			e.Parser, e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a file path rejected before any I/O happened.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidInputError represents an interactive value that failed validation.
// Its message is shown to the user verbatim before re-prompting.
type InvalidInputError struct {
	Input string
	Msg   string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
