package grades

import (
	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/validate"
)

// Validate checks that every row after the primary header has the same
// column count as the header itself, reporting each deviating row with its
// 1-based number and expected-vs-actual counts. The platform's extra
// header rows are checked too: a short metadata row is the same structural
// fault as a short data row. No value semantics are checked here.
func Validate(b *Book) *validate.Report {
	report := validate.NewReport("grades", b.Name)
	want := len(b.Header)

	row := 0
	check := func(r []string) {
		row++
		if len(r) != want {
			report.Add(row, "", errors.NewStructuralError(b.Name, row, want, len(r)))
		}
	}

	for _, r := range b.headerBlock[1:] {
		check(r)
	}
	for _, r := range b.Rows {
		check(r)
	}

	return report
}
