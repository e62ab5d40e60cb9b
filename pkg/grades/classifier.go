package grades

import (
	"context"
	"sort"

	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/logging"
)

// Selection is the ordered set of graded assignment columns. Indices are
// zero-based and relative to the assignment region, in header order.
type Selection struct {
	// Indices are the selected columns within the assignment region.
	Indices []int

	// Names are the assignment names at those columns, verbatim from the
	// grade header.
	Names []string
}

// Len returns the number of selected columns.
func (s Selection) Len() int { return len(s.Indices) }

// Classify decides which assignment columns represent graded work.
//
// Platforms without activity types grade every assignment column, so the
// selection is the identity over the whole region. Platforms with an
// activity-type row grade exactly the columns whose type is in the
// profile's graded vocabulary; known informational types and unrecognized
// ones are excluded alike, with unrecognized types logged once at warn
// level so a new platform vocabulary doesn't silently shrink an import.
func Classify(ctx context.Context, b *Book) (Selection, error) {
	names := b.AssignmentNames()

	if !b.Profile.HasActivityTypes() {
		sel := Selection{
			Indices: make([]int, len(names)),
			Names:   names,
		}
		for i := range names {
			sel.Indices[i] = i
		}
		return sel, nil
	}

	types := b.ActivityTypes()
	if len(types) != len(names) {
		return Selection{}, errors.NewClassificationError(b.Name, string(b.Profile.ID), len(names), len(types))
	}

	var sel Selection
	unknown := map[string]bool{}
	for i, at := range types {
		graded, known := b.Profile.Classify(at)
		if !known && at != "" {
			unknown[at] = true
		}
		if graded {
			sel.Indices = append(sel.Indices, i)
			sel.Names = append(sel.Names, names[i])
		}
	}

	if len(unknown) > 0 {
		list := make([]string, 0, len(unknown))
		for at := range unknown {
			list = append(list, at)
		}
		sort.Strings(list)
		logging.FromContext(ctx).Warn().
			Strs("activity_types", list).
			Msg("Unrecognized activity types treated as ungraded")
	}

	return sel, nil
}
