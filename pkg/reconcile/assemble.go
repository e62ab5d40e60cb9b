// Package reconcile merges the validated roster with the classified grade
// book into the import-ready output table. For each roster student, in
// roster order, it looks up the matching grade row by identity key and
// extracts the selected assignment columns behind the fixed identity
// prefix.
package reconcile

import (
	"context"

	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/grades"
	"github.com/classkit/gradeport/pkg/logging"
	"github.com/classkit/gradeport/pkg/roster"
	"github.com/classkit/gradeport/pkg/tabular"
)

// Result is the outcome of one reconciliation.
type Result struct {
	// Output is the assembled import table.
	Output *tabular.Table

	// Unmatched lists roster students with no grade record, in roster
	// order. Their output rows carry empty grade cells.
	Unmatched []string

	// Stats summarizes the reconciliation.
	Stats Stats
}

// Stats summarizes one reconciliation.
type Stats struct {
	// Students is the number of roster students processed.
	Students int

	// Matched is how many had a grade record.
	Matched int

	// Missing is how many had none.
	Missing int

	// Assignments is the number of graded columns emitted.
	Assignments int
}

// identityHeader is the fixed prefix of every output row.
var identityHeader = []string{
	constants.HeaderEmail,
	constants.HeaderFirstName,
	constants.HeaderLastName,
	constants.HeaderUniqueUserID,
}

// Assemble builds the output table from a validated roster and grade book.
// The book's index must already be built. A roster student without a grade
// record still gets a row, with empty grade cells, so the import covers
// the whole class; each one is logged and counted.
func Assemble(ctx context.Context, r *roster.Roster, b *grades.Book, sel grades.Selection) *Result {
	log := logging.FromContext(ctx)

	header := make([]string, 0, len(identityHeader)+sel.Len())
	header = append(header, identityHeader...)
	header = append(header, sel.Names...)

	result := &Result{
		Output: &tabular.Table{
			Header: header,
			Rows:   make([][]string, 0, r.Len()),
		},
		Stats: Stats{Students: r.Len(), Assignments: sel.Len()},
	}

	for i := range r.Rows {
		student := &r.Rows[i]
		out := make([]string, 0, len(header))
		out = append(out, student.Email, student.FirstName, student.LastName, student.UniqueUserID)

		gradeRow, ok := b.Lookup(student.Email)
		if ok {
			result.Stats.Matched++
			for _, idx := range sel.Indices {
				col := b.Profile.AssignmentStart + idx
				if col < len(gradeRow) {
					out = append(out, gradeRow[col])
				} else {
					out = append(out, "")
				}
			}
		} else {
			result.Stats.Missing++
			result.Unmatched = append(result.Unmatched, student.Email)
			log.Warn().
				Str("email", student.Email).
				Int("row", student.Line).
				Msg("Roster student has no grade record; emitting empty grade cells")
			for range sel.Indices {
				out = append(out, "")
			}
		}

		result.Output.Rows = append(result.Output.Rows, out)
	}

	return result
}
