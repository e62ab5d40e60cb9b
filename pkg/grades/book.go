// Package grades models the grade export of a course platform: a header
// block shaped by the platform's profile, data rows keyed by the platform's
// identity column, and the classification of assignment columns into graded
// and informational work.
package grades

import (
	"fmt"

	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/platform"
	"github.com/classkit/gradeport/pkg/tabular"
)

// Book is one parsed grade export.
type Book struct {
	// Name is the source file, used in diagnostics.
	Name string

	// Profile is the platform profile the export was parsed under.
	Profile *platform.Profile

	// Header is the primary header row: column names, including the
	// assignment names from AssignmentStart onward.
	Header []string

	// headerBlock holds every header row, primary first. CodeHS exports
	// carry three; the activity-type row is one of them.
	headerBlock [][]string

	// Rows are the data rows, in file order.
	Rows [][]string

	byKey map[string]int
}

// New splits a raw table into header block and data rows per the platform
// profile. The tabular reader has already consumed the first file row as
// the table header; any further header rows are peeled off the data.
func New(t *tabular.Table, p *platform.Profile) (*Book, error) {
	extra := p.HeaderRows - 1
	if len(t.Rows) < extra {
		return nil, errors.NewParseError("csv", t.Name,
			fmt.Sprintf("%s exports carry %d header rows, file has %d rows in total", p.Name, p.HeaderRows, len(t.Rows)+1), nil)
	}
	if len(t.Header) <= p.AssignmentStart {
		return nil, errors.NewParseError("csv", t.Name,
			fmt.Sprintf("header has %d columns, assignment region starts at column %d", len(t.Header), p.AssignmentStart), nil)
	}

	block := make([][]string, 0, p.HeaderRows)
	block = append(block, t.Header)
	block = append(block, t.Rows[:extra]...)

	return &Book{
		Name:        t.Name,
		Profile:     p,
		Header:      t.Header,
		headerBlock: block,
		Rows:        t.Rows[extra:],
	}, nil
}

// AssignmentNames returns the assignment column names, verbatim from the
// primary header.
func (b *Book) AssignmentNames() []string {
	return b.Header[b.Profile.AssignmentStart:]
}

// ActivityTypes returns the activity-type row aligned to the assignment
// region, or nil when the platform has none. The returned slice may be
// shorter or longer than the assignment region when the export is
// malformed; the classifier reports that case.
func (b *Book) ActivityTypes() []string {
	if !b.Profile.HasActivityTypes() {
		return nil
	}
	row := b.headerBlock[b.Profile.ActivityTypeRow]
	if len(row) <= b.Profile.AssignmentStart {
		return []string{}
	}
	return row[b.Profile.AssignmentStart:]
}

// Key returns the identity key of the given data row, or the empty string
// when the row is too short to hold it.
func (b *Book) Key(row int) string {
	if row < 0 || row >= len(b.Rows) {
		return ""
	}
	r := b.Rows[row]
	if b.Profile.KeyColumn >= len(r) {
		return ""
	}
	return r[b.Profile.KeyColumn]
}

// BuildIndex builds the key-to-row index. A duplicate identity key means
// two rows claim the same student, which is a data error, so indexing
// fails instead of overwriting.
func (b *Book) BuildIndex() error {
	b.byKey = make(map[string]int, len(b.Rows))
	for i := range b.Rows {
		key := b.Key(i)
		if key == "" {
			continue
		}
		if _, exists := b.byKey[key]; exists {
			return errors.NewDuplicateKeyError(b.Name, i+1, b.Header[b.Profile.KeyColumn], key)
		}
		b.byKey[key] = i
	}
	return nil
}

// Lookup returns the data row for an identity key. BuildIndex must have
// been called first.
func (b *Book) Lookup(key string) ([]string, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return nil, false
	}
	return b.Rows[i], true
}
