package tabular

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/classkit/gradeport/pkg/constants"
	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/logging"
)

// ReadFile reads a delimited text file into a Table. The file is opened,
// fully consumed, and closed before returning. Encoding is detected and
// normalized to UTF-8 first.
func ReadFile(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.Size() > constants.MaxFileSize {
		return nil, errors.NewIOError("read", path, errors.New("file too large for a class export"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	return Parse(data, path)
}

// Parse decodes raw file bytes and parses them into a Table named after
// the source. Rows keep whatever width the file gave them.
func Parse(data []byte, name string) (*Table, error) {
	decoded, encoding, err := decode(data)
	if err != nil {
		return nil, errors.NewParseError("csv", name, "encoding detection failed", err)
	}
	if encoding != "utf-8" {
		logging.Debug().Str("file", name).Str("encoding", encoding).Msg("Converted input to UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Width checks belong to the validators, not the reader.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParseError("csv", name, "empty file: no header row found", err)
		}
		return nil, errors.NewParseError("csv", name, "failed to read header row", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// 1-based data row number; the header is row 0.
			return nil, errors.NewParseError("csv", name, err.Error(), err)
		}
		rows = append(rows, row)
	}

	return &Table{Name: name, Header: header, Rows: rows}, nil
}
