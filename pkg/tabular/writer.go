package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/errors"
)

// Write serializes the table as CSV: header first, then rows in order.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return errors.WrapIO("write", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", t.Name, err)
		}
	}
	cw.Flush()
	return errors.WrapIO("write", t.Name, cw.Error())
}

// WriteFile creates the destination file and serializes the table into it.
// The file is only created here, after the caller has finished validating,
// so a failed run never leaves a partial output behind an old path.
func (t *Table) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.WrapIO("close", path, f.Close())
}
