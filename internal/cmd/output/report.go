package output

import (
	"strconv"

	"github.com/classkit/gradeport/pkg/reconcile"
	"github.com/classkit/gradeport/pkg/validate"
)

// FromReport converts a validation report into formatter data, one row
// per violation.
func FromReport(r *validate.Report) Data {
	data := Data{
		Title:   r.Subject + ": " + r.File,
		Headers: []string{"Row", "Field", "Problem"},
	}

	for _, v := range r.Violations {
		row := ""
		if v.Row > 0 {
			row = strconv.Itoa(v.Row)
		}
		data.Rows = append(data.Rows, []string{row, v.Field, v.Err.Error()})
	}

	status := "valid"
	if !r.Valid() {
		status = "invalid"
	}
	data.Summary = []Field{
		{Name: "status", Value: status},
		{Name: "violations", Value: strconv.Itoa(len(r.Violations))},
	}
	return data
}

// FromStats converts a reconciliation summary into formatter data.
func FromStats(stats reconcile.Stats, unmatched []string, outPath string) Data {
	data := Data{
		Title: "Import summary",
		Summary: []Field{
			{Name: "students", Value: strconv.Itoa(stats.Students)},
			{Name: "matched", Value: strconv.Itoa(stats.Matched)},
			{Name: "missing", Value: strconv.Itoa(stats.Missing)},
			{Name: "assignments", Value: strconv.Itoa(stats.Assignments)},
			{Name: "output", Value: outPath},
		},
	}

	if len(unmatched) > 0 {
		data.Headers = []string{"Unmatched Student"}
		for _, email := range unmatched {
			data.Rows = append(data.Rows, []string{email})
		}
	}
	return data
}
