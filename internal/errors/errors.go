package errors

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

// Diagnostic is a single front-end diagnostic. The lexer produces these
// for unterminated constructs; the parser never does — malformed input
// degrades to fallback nodes instead (see internal/parser).
type Diagnostic struct {
	Message  string   // human-readable description
	Severity Severity // error, warning, or hint
	File     string   // source file path (empty if unknown)
	Line     int      // 0 if unknown
	Column   int      // 0 if unknown
	Code     string   // "L001" style diagnostic code
}

// Error makes a Diagnostic usable as a Go error.
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format returns a single-line representation of this diagnostic
// suitable for terminal output (without ANSI — the caller wraps with cli colors).
func (d *Diagnostic) Format() string {
	var b strings.Builder

	if d.File != "" {
		b.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&b, ":%d:%d", d.Line, d.Column)
		}
		b.WriteString(" — ")
	} else if d.Line > 0 {
		fmt.Fprintf(&b, "%d:%d — ", d.Line, d.Column)
	}

	b.WriteString(d.Message)

	if d.Code != "" {
		b.WriteString(" [")
		b.WriteString(d.Code)
		b.WriteString("]")
	}

	return b.String()
}

// Diagnostics collects diagnostics produced for one source file.
type Diagnostics struct {
	diags []*Diagnostic
	file  string // default file context
}

// New creates a Diagnostics collection scoped to a file.
func New(file string) *Diagnostics {
	return &Diagnostics{file: file}
}

// Add appends a diagnostic to the collection.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d.File == "" {
		d.File = ds.file
	}
	ds.diags = append(ds.diags, d)
}

// AddError is a shorthand for adding a SeverityError diagnostic.
func (ds *Diagnostics) AddError(code, message string) {
	ds.Add(&Diagnostic{Code: code, Message: message, Severity: SeverityError})
}

// AddWarning is a shorthand for adding a SeverityWarning diagnostic.
func (ds *Diagnostics) AddWarning(code, message string) {
	ds.Add(&Diagnostic{Code: code, Message: message, Severity: SeverityWarning})
}

// HasErrors returns true if the collection contains any SeverityError entries.
func (ds *Diagnostics) HasErrors() bool {
	for _, d := range ds.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns every diagnostic in the collection.
func (ds *Diagnostics) All() []*Diagnostic {
	return ds.diags
}

// Format returns a human-friendly multiline string of all diagnostics.
func (ds *Diagnostics) Format() string {
	var b strings.Builder
	for i, d := range ds.diags {
		if i > 0 {
			b.WriteString("\n")
		}

		switch d.Severity {
		case SeverityError:
			fmt.Fprintf(&b, "✗ %s", d.Format())
		case SeverityWarning:
			fmt.Fprintf(&b, "⚠ %s", d.Format())
		case SeverityHint:
			fmt.Fprintf(&b, "· %s", d.Format())
		}
	}
	return b.String()
}
