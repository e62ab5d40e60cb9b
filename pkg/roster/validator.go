package roster

import (
	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/tabular"
	"github.com/classkit/gradeport/pkg/validate"
)

// Validate checks the roster table and reports every violation found. Four
// checks run in order, and none of them stops at the first failing row:
//
//  1. Header: the four required names are present, with Student Email at
//     column 0 and Unique User ID at column 3. A missing header and a
//     misplaced one are reported distinctly.
//  2. Width: every data row has at least four columns.
//  3. Identity: Student Email and Unique User ID are non-empty on rows
//     wide enough to hold them.
//  4. Cross-id agreement: the email matches <2 letters><digits>@<domain>
//     and its digits equal the digits after the 1_ prefix of the unique id.
//
// The input table is never mutated.
func Validate(t *tabular.Table) *validate.Report {
	report := validate.NewReport("roster", t.Name)

	checkHeader(t, report)
	checkWidths(t, report)
	checkIdentity(t, report)
	checkCrossID(t, report)

	return report
}

// requiredHeaders maps each required header name to its fixed column, or -1
// when it may appear anywhere.
var requiredHeaders = []struct {
	name string
	pos  int
}{
	{constants.RosterHeaderEmail, constants.RosterEmailColumn},
	{constants.RosterHeaderFirstName, -1},
	{constants.RosterHeaderLastName, -1},
	{constants.RosterHeaderUniqueUserID, constants.RosterUniqueUserIDColumn},
}

func checkHeader(t *tabular.Table, report *validate.Report) {
	for _, req := range requiredHeaders {
		got := t.ColumnIndex(req.name)
		if got < 0 {
			report.Add(0, req.name, errors.NewSchemaError(t.Name, req.name, req.pos, -1))
			continue
		}
		if req.pos >= 0 && got != req.pos {
			report.Add(0, req.name, errors.NewSchemaError(t.Name, req.name, req.pos, got))
		}
	}
}

func checkWidths(t *tabular.Table, report *validate.Report) {
	for i, row := range t.Rows {
		if len(row) < constants.RosterMinColumns {
			report.Add(i+1, "", errors.NewStructuralError(t.Name, i+1, constants.RosterMinColumns, len(row)))
		}
	}
}

func checkIdentity(t *tabular.Table, report *validate.Report) {
	for i, row := range t.Rows {
		if len(row) < constants.RosterMinColumns {
			// Width violation already reported; email and id are missing.
			continue
		}
		if row[constants.RosterEmailColumn] == "" {
			report.Add(i+1, constants.RosterHeaderEmail,
				errors.NewDataIntegrityError(t.Name, i+1, constants.RosterHeaderEmail, "", "required field is empty"))
		}
		if row[constants.RosterUniqueUserIDColumn] == "" {
			report.Add(i+1, constants.RosterHeaderUniqueUserID,
				errors.NewDataIntegrityError(t.Name, i+1, constants.RosterHeaderUniqueUserID, "", "required field is empty"))
		}
	}
}

func checkCrossID(t *tabular.Table, report *validate.Report) {
	for i, row := range t.Rows {
		if len(row) < constants.RosterMinColumns {
			continue
		}
		email := row[constants.RosterEmailColumn]
		uid := row[constants.RosterUniqueUserIDColumn]
		if email == "" || uid == "" {
			// Empty identity already reported.
			continue
		}

		m := emailPattern.FindStringSubmatch(email)
		if m == nil {
			report.Add(i+1, constants.RosterHeaderEmail,
				errors.NewDataIntegrityError(t.Name, i+1, constants.RosterHeaderEmail, email, "invalid email format"))
			continue
		}

		u := uniqueIDPattern.FindStringSubmatch(uid)
		if u == nil {
			report.Add(i+1, constants.RosterHeaderUniqueUserID,
				errors.NewDataIntegrityError(t.Name, i+1, constants.RosterHeaderUniqueUserID, uid,
					"id mismatch: unique user id is not in 1_<digits> form"))
			continue
		}

		if m[1] != u[1] {
			report.Add(i+1, constants.RosterHeaderUniqueUserID,
				errors.NewDataIntegrityError(t.Name, i+1, constants.RosterHeaderUniqueUserID, uid,
					"id mismatch: email encodes student id "+m[1]+" but unique user id encodes "+u[1]))
		}
	}
}
