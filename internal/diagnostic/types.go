package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"relation-factory/internal/common"
)

// Diagnostic codes.
const (
	CodeUnknownRelation = "unknown-relation"
	CodeMissingMapping  = "missing-mapping"
	CodeConstructFailed = "construct-failed"
	CodeDecodeFailed    = "decode-failed"
)

// Diagnostics holds all diagnostic information from an import.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Relation is the relation name of the record (if any).
	Relation string
	// Line is the 1-based position of the record in the export stream (0 if none).
	Line int
	// Attribute identifies which attribute this relates to (if any).
	Attribute string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Location identifies the record a diagnostic is about.
type Location struct {
	Relation  string
	Line      int
	Attribute string
}

func (d *Diagnostics) add(list *[]Diagnostic, severity DiagnosticSeverity, code, message string, loc Location) {
	*list = append(*list, Diagnostic{
		Severity:  severity,
		Code:      code,
		Message:   message,
		Relation:  loc.Relation,
		Line:      loc.Line,
		Attribute: loc.Attribute,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, loc Location) {
	d.add(&d.Errors, DiagnosticError, code, message, loc)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, loc Location) {
	d.add(&d.Warnings, DiagnosticWarning, code, message, loc)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	all = append(all, d.Errors...)

	return append(all, d.Warnings...)
}

// Counts returns the number of diagnostics per code.
func (d *Diagnostics) Counts() map[string]int {
	counts := make(map[string]int)
	for _, diag := range d.All() {
		counts[diag.Code]++
	}

	return counts
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Relation != "" {
		prefix = append(prefix, "["+d.Relation+"]")
	}

	if d.Attribute != "" {
		prefix = append(prefix, d.Attribute)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
