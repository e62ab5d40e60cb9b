// Package validate collects validation violations into reports. A report
// gathers every violation a validator finds, with enough positional context
// to locate the fault in the source file, instead of stopping at the first.
package validate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/errors"
)

// Violation is one validation failure, positioned within its source file.
type Violation struct {
	// File is the source file the violation was found in.
	File string

	// Row is the 1-based data row number, or 0 for file-level violations
	// such as a missing header.
	Row int

	// Field names the offending column or header, when one applies.
	Field string

	// Err is the underlying typed error.
	Err error
}

// String renders the violation for the report listing.
func (v Violation) String() string {
	return v.Err.Error()
}

// Report is the outcome of validating one table.
type Report struct {
	// Subject names what was validated, e.g. "roster" or "grades".
	Subject string

	// File is the validated file.
	File string

	// Violations lists every failure found, in check order.
	Violations []Violation
}

// NewReport creates an empty report for the given subject and file.
func NewReport(subject, file string) *Report {
	return &Report{Subject: subject, File: file}
}

// Add records a violation.
func (r *Report) Add(row int, field string, err error) {
	r.Violations = append(r.Violations, Violation{File: r.File, Row: row, Field: field, Err: err})
}

// Valid reports whether the table passed every check.
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a valid report, or an error summarizing the failure
// count. The individual violations stay on the report.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("%s %s: %d validation failure(s): %w", r.Subject, r.File, len(r.Violations), errors.ErrInvalidInput)
}

// String renders the report as one line per violation. Past
// constants.MaxReportViolations lines, the remainder is summarized.
func (r *Report) String() string {
	if r.Valid() {
		return fmt.Sprintf("%s %s: valid", r.Subject, r.File)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d violation(s)\n", r.Subject, r.File, len(r.Violations))
	for i, v := range r.Violations {
		if i == constants.MaxReportViolations {
			fmt.Fprintf(&b, "  ... and %d more\n", len(r.Violations)-i)
			break
		}
		b.WriteString("  - ")
		b.WriteString(v.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Log writes every violation to the logger at error level.
func (r *Report) Log(logger *zerolog.Logger) {
	for _, v := range r.Violations {
		ev := logger.Error().Str("subject", r.Subject).Str("file", v.File)
		if v.Row > 0 {
			ev = ev.Int("row", v.Row)
		}
		if v.Field != "" {
			ev = ev.Str("field", v.Field)
		}
		ev.Msg(v.Err.Error())
	}
}
