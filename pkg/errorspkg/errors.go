// Package errorspkg carries position-tagged diagnostics for the lexer and
// parser through a single reporting channel.
package errorspkg

import "fmt"

// Position is a line/column/offset triple. Line and Offset are 0-based;
// Column is 0-based internally and rendered 1-based by Diagnostic.Error.
type Position struct {
	Line   int
	Column int
	Offset int
}

// ErrorType identifies which subsystem raised a Diagnostic.
type ErrorType int

const (
	ErrorTypeReader ErrorType = iota
	ErrorTypeLexer
	ErrorTypeParser
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeReader:
		return "reader"
	case ErrorTypeLexer:
		return "lexer"
	case ErrorTypeParser:
		return "parser"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported error with its source position.
type Diagnostic struct {
	Message  string
	Position Position
	Type     ErrorType
}

// Error renders "YAML(<line>,<column>): <message>" with a 1-based column
// and a 0-based line.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("YAML(%d,%d): %s", d.Position.Line, d.Position.Column+1, d.Message)
}

// New creates a Diagnostic.
func New(msg string, pos Position, errType ErrorType) *Diagnostic {
	return &Diagnostic{Message: msg, Position: pos, Type: errType}
}

// Reporter accumulates diagnostics raised by the lexer and parser. Every
// diagnostic is appended to Errors. When ThrowOnError is set, Report also
// returns the diagnostic as an error for the caller to propagate
// immediately; otherwise Report returns nil so the caller can keep making
// forward progress.
type Reporter struct {
	ThrowOnError bool
	diagnostics  []*Diagnostic
}

// NewReporter creates a Reporter with the given throw-on-error behavior.
func NewReporter(throwOnError bool) *Reporter {
	return &Reporter{ThrowOnError: throwOnError}
}

// Report records a diagnostic. Under ThrowOnError it also returns the
// diagnostic as an error; callers must still make at least one character
// or token of forward progress regardless of the return value.
func (r *Reporter) Report(pos Position, errType ErrorType, msg string) error {
	d := New(msg, pos, errType)
	r.diagnostics = append(r.diagnostics, d)
	if r.ThrowOnError {
		return d
	}
	return nil
}

// Errors returns every diagnostic reported so far, in occurrence order.
func (r *Reporter) Errors() []*Diagnostic {
	return r.diagnostics
}

// ErrorOccurred reports whether any diagnostic has been recorded.
func (r *Reporter) ErrorOccurred() bool {
	return len(r.diagnostics) > 0
}
