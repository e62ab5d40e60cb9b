// Package roster models the class roster export: one identity record per
// student, keyed by the student email. It validates the roster's schema and
// the cross-field agreement between the email-encoded student id and the
// Unique User ID column, and builds the email index the reconciler joins
// against.
package roster

import (
	"regexp"

	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/tabular"
)

// emailPattern captures the digit sequence of a student email of the form
// <2 letters><digits>@<domain>.
var emailPattern = regexp.MustCompile(`^[A-Za-z]{2}(\d+)@.*$`)

// uniqueIDPattern captures the digit sequence of a Unique User ID of the
// form 1_<digits>.
var uniqueIDPattern = regexp.MustCompile(`^1_(\d+)$`)

// Row is one student's identity record.
type Row struct {
	// Email is the student email, format <2 letters><digits>@<domain>.
	Email string

	// FirstName and LastName are the student's names.
	FirstName string
	LastName  string

	// UniqueUserID is the LMS identifier, format 1_<digits>. Its digit
	// sequence must agree with the digits embedded in Email.
	UniqueUserID string

	// Line is the 1-based data row number in the source file.
	Line int
}

// Roster is the parsed roster table: rows in file order plus an index from
// student email to row.
type Roster struct {
	// Header is the roster file's header row.
	Header []string

	// Rows are the students in file order.
	Rows []Row

	byEmail map[string]*Row
}

// Lookup returns the row for a student email.
func (r *Roster) Lookup(email string) (*Row, bool) {
	row, ok := r.byEmail[email]
	return row, ok
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.Rows)
}

// New builds a Roster from a validated table, indexing rows by student
// email. A duplicate email is a data error: two students cannot share an
// identity key, so the build fails rather than letting a later row
// silently overwrite an earlier one.
func New(t *tabular.Table) (*Roster, error) {
	firstNameCol := t.ColumnIndex(constants.RosterHeaderFirstName)
	lastNameCol := t.ColumnIndex(constants.RosterHeaderLastName)

	r := &Roster{
		Header:  t.Header,
		Rows:    make([]Row, 0, len(t.Rows)),
		byEmail: make(map[string]*Row, len(t.Rows)),
	}

	for i := range t.Rows {
		line := i + 1
		row := Row{
			Email:        t.Cell(i, constants.RosterEmailColumn),
			UniqueUserID: t.Cell(i, constants.RosterUniqueUserIDColumn),
			Line:         line,
		}
		if firstNameCol >= 0 {
			row.FirstName = t.Cell(i, firstNameCol)
		}
		if lastNameCol >= 0 {
			row.LastName = t.Cell(i, lastNameCol)
		}

		if _, exists := r.byEmail[row.Email]; exists {
			return nil, errors.NewDuplicateKeyError(t.Name, line, constants.RosterHeaderEmail, row.Email)
		}

		r.Rows = append(r.Rows, row)
		r.byEmail[row.Email] = &r.Rows[len(r.Rows)-1]
	}

	return r, nil
}
