package grades

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/classkit/gradeport/pkg/errors"
)

// Range restricts an import to assignment columns whose names carry a
// dotted lesson number inside an inclusive span, e.g. 5.4-5.8 for
// ProjectStem or 8.1.3-8.3.9 for CodeHS.
type Range struct {
	lo, hi []int
	// Raw is the range as entered.
	Raw string
}

// dottedNumber finds the first dotted lesson number inside an assignment
// name, e.g. "8.1.3" in "8.1.3 Karel Exercise".
var dottedNumber = regexp.MustCompile(`\d+(?:\.\d+)+`)

// ParseRange parses a range of the form X.X-X.X (any dotted depth). The
// first bound must not exceed the second.
func ParseRange(s string) (*Range, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return nil, errors.New("assignment range must be of the form X.X-X.X")
	}

	lo, err := parseDotted(parts[0])
	if err != nil {
		return nil, err
	}
	hi, err := parseDotted(parts[1])
	if err != nil {
		return nil, err
	}

	if compareDotted(lo, hi) > 0 {
		return nil, errors.New("invalid assignment range: the first assignment must not be greater than the second")
	}

	return &Range{lo: lo, hi: hi, Raw: strings.TrimSpace(s)}, nil
}

// Contains reports whether an assignment name carries a dotted number
// inside the range. Names without one are excluded: an active range only
// selects numbered assignments.
func (r *Range) Contains(name string) bool {
	tok := dottedNumber.FindString(name)
	if tok == "" {
		return false
	}
	n, err := parseDotted(tok)
	if err != nil {
		return false
	}
	return compareDotted(r.lo, n) <= 0 && compareDotted(n, r.hi) <= 0
}

// Filter returns the sub-selection whose assignment names fall inside the
// range, preserving selection order.
func (r *Range) Filter(sel Selection) Selection {
	var out Selection
	for i, name := range sel.Names {
		if r.Contains(name) {
			out.Indices = append(out.Indices, sel.Indices[i])
			out.Names = append(out.Names, name)
		}
	}
	return out
}

func parseDotted(s string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	n := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New("assignment numbers must be dotted integers like 5.4 or 8.1.3")
		}
		n[i] = v
	}
	return n, nil
}

// compareDotted compares dotted numbers part by part; a prefix sorts
// before any extension of itself (5.4 < 5.4.1).
func compareDotted(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
