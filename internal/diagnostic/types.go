package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostic codes emitted by candidate validation and source
// resolution.
const (
	CodeNotExtensible     = "MVB001" // containing type not extensible
	CodeMissingObservable = "MVB002" // missing companion observable annotation
	CodeUnderivableName   = "MVB003" // property name undeterminable
	CodeOptionsNotFound   = "MVB004" // named options source not found
	CodeOptionsSignature  = "MVB005" // named options source has wrong signature
	CodeSuggestsSignature = "MVB006" // suggestions source has wrong signature
)

// Diagnostics holds all diagnostic information from one resolution pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message attributed to a
// source location.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is the stable identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies the containing type this relates to (if any).
	Type string
	// Field identifies the field this relates to (if any).
	Field string
	// Pos is the attributed source location.
	Pos token.Position
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, field string, pos token.Position) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Field:    field,
		Pos:      pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, field string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Type:     typeName,
		Field:    field,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return all
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string in the shape
// "file:line:col: MVB001: message [Type.field]".
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	}

	fmt.Fprintf(&sb, "%s: %s", d.Code, d.Message)

	switch {
	case d.Type != "" && d.Field != "":
		fmt.Fprintf(&sb, " [%s.%s]", d.Type, d.Field)
	case d.Type != "":
		fmt.Fprintf(&sb, " [%s]", d.Type)
	}

	return sb.String()
}
