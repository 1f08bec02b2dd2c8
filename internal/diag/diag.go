// Package diag accumulates and renders compiler diagnostics.
//
// Lex and resolution errors are accumulated in a Reporter and traversal
// continues; pattern and type errors are returned as an error that aborts
// the containing expression; internal invariant violations call Fatal and
// exit the process. No diagnostic is ever panicked.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/antec-lang/antec/internal/lexer"
)

// Kind classifies a diagnostic by the stage that produced it.
type Kind int

const (
	Lex Kind = iota
	Parse
	Resolution
	Pattern
	TypeError
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	case Resolution:
		return "resolution error"
	case Pattern:
		return "pattern error"
	case TypeError:
		return "type error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// Diagnostic is a single reported problem with an optional source span.
type Diagnostic struct {
	Kind    Kind
	Message string
	Span    lexer.Span
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Span.Start.Filename, d.Span.Start.Line, d.Span.Start.Column, d.Kind, d.Message)
}

// New builds a Diagnostic for a single Position, used when no end of span
// is meaningful (most lexer/resolution errors point at one location).
func New(kind Kind, msg string, pos lexer.Position) Diagnostic {
	return Diagnostic{Kind: kind, Message: msg, Span: lexer.Span{Start: pos, End: pos}}
}

// Reporter accumulates diagnostics produced across a compilation. It is
// never a package-level global: every pass that can fail takes a *Reporter
// explicitly.
type Reporter struct {
	diagnostics []Diagnostic
	out         io.Writer
	color       bool
}

// NewReporter creates a Reporter that writes to w, auto-detecting color
// support the way the original lexer's isTty flag did.
func NewReporter(w io.Writer) *Reporter {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty(f)
	}
	return &Reporter{out: w, color: useColor}
}

func isatty(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Report accumulates a diagnostic without aborting.
func (r *Reporter) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Reportf is a convenience wrapper around Report/New.
func (r *Reporter) Reportf(kind Kind, pos lexer.Position, format string, args ...any) {
	r.Report(New(kind, fmt.Sprintf(format, args...), pos))
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// HasErrors reports whether any diagnostic has been accumulated.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Render prints every accumulated diagnostic as a colored source span,
// or plain text when the Reporter's writer is not a terminal.
func (r *Reporter) Render() {
	kindColor := color.New(color.FgRed, color.Bold)
	locColor := color.New(color.FgCyan)
	for _, d := range r.diagnostics {
		if r.color {
			fmt.Fprintf(r.out, "%s %s: %s\n",
				locColor.Sprintf("%s:%d:%d:", d.Span.Start.Filename, d.Span.Start.Line, d.Span.Start.Column),
				kindColor.Sprint(d.Kind),
				d.Message)
		} else {
			fmt.Fprintln(r.out, d.Error())
		}
	}
}

// Fatal reports an internal invariant violation and aborts the process.
// It is reserved for assertion failures that the front-end cannot recover
// from — never used for ordinary lex/parse/resolution/pattern errors.
func Fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "internal error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(2)
}
