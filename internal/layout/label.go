// Package layout arranges validated labels into non-colliding visual lanes:
// underline segments and message rows for inline labels, margin bracket
// lanes for multiline labels. It is a pure function of its inputs and does
// no IO; span validation happens before labels reach this package.
package layout

import "sort"

// Attach selects which column of an inline underline the connector rises from.
type Attach uint8

const (
	// AttachMiddle anchors at the midpoint of the span.
	AttachMiddle Attach = iota
	// AttachStart anchors at the first column.
	AttachStart
	// AttachEnd anchors at the last column.
	AttachEnd
)

// Options carries the subset of report configuration that affects layout.
type Options struct {
	Attach     Attach
	Compact    bool
	Underlines bool
}

// Label is a validated, position-resolved annotation. Columns are display
// cells; EndCol is exclusive on EndLine. Lines and columns are zero-based.
type Label struct {
	ID        int // порядок вставки, ломает ничьи
	Path      string
	Start     int
	End       int
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
	Message   string
	Order     int
	HasOrder  bool
	Priority  int
}

// Multiline reports whether the label covers more than one source line.
func (l Label) Multiline() bool {
	return l.StartLine != l.EndLine
}

// AttachCol resolves the connector anchor column for an inline label.
func (l Label) AttachCol(a Attach) int {
	last := l.EndCol - 1
	if last < l.StartCol {
		last = l.StartCol // точечный лейбл
	}
	switch a {
	case AttachStart:
		return l.StartCol
	case AttachEnd:
		return last
	default:
		return l.StartCol + (last-l.StartCol)/2
	}
}

func (l Label) orderKey() int {
	if l.HasOrder {
		return l.Order
	}
	return 0
}

// FileGroup is the set of labels attached to one file, in render order.
type FileGroup struct {
	Path   string
	Labels []Label
}

// Group partitions labels by resolved path and establishes the render order
// inside each group: explicit order ascending (unset counts as zero), then
// start offset, then end offset, then insertion sequence. The group of the
// primary path comes first; remaining groups follow first-appearance order.
func Group(labels []Label, primaryPath string) []FileGroup {
	byPath := make(map[string]int)
	groups := make([]FileGroup, 0, 1)

	// Примари-группа всегда существует, даже пустая.
	byPath[primaryPath] = 0
	groups = append(groups, FileGroup{Path: primaryPath})

	for _, l := range labels {
		idx, ok := byPath[l.Path]
		if !ok {
			idx = len(groups)
			byPath[l.Path] = idx
			groups = append(groups, FileGroup{Path: l.Path})
		}
		groups[idx].Labels = append(groups[idx].Labels, l)
	}

	for i := range groups {
		ls := groups[i].Labels
		sort.SliceStable(ls, func(a, b int) bool {
			la, lb := ls[a], ls[b]
			if la.orderKey() != lb.orderKey() {
				return la.orderKey() < lb.orderKey()
			}
			if la.Start != lb.Start {
				return la.Start < lb.Start
			}
			if la.End != lb.End {
				return la.End < lb.End
			}
			return la.ID < lb.ID
		})
	}
	return groups
}
