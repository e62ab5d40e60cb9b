package tabular

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte-order marks recognized at the start of input files.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode detects the encoding of raw file bytes, strips any BOM, and
// returns UTF-8 bytes plus the detected encoding name. Exports from
// spreadsheet tools arrive in UTF-8 (with or without BOM), UTF-16, or
// Latin-1, so all four are handled.
func decode(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return data, "utf-8", nil
	}

	if bytes.HasPrefix(data, bomUTF8) {
		return data[3:], "utf-8-bom", nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", err
		}
		return out, "utf-16le", nil
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return nil, "", err
		}
		return out, "utf-16be", nil
	}

	if utf8.Valid(data) {
		return data, "utf-8", nil
	}

	// Fallback: Latin-1 maps every byte to the same Unicode code point,
	// so decoding cannot fail.
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, "", err
	}
	return out, "latin-1", nil
}
