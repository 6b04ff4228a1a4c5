package caret

// Label annotates a half-open span with an optional message, color, render
// order and layout priority. Labels are immutable values: every With method
// returns a copy overriding exactly one field, so deriving a variant of an
// existing label never aliases the original.
type Label struct {
	start, end int
	path       string // пусто - примари файл репорта
	message    string
	color      Color
	order      int
	hasOrder   bool
	priority   int
}

// NewLabel annotates the span [start, end) in the report's primary file.
// start == end is a valid zero-width label, rendered as a single marker.
func NewLabel(start, end int) Label {
	return Label{start: start, end: end}
}

// WithPath points the label at another file in the report's file set.
func (l Label) WithPath(path string) Label { l.path = path; return l }

// WithMessage attaches the message printed at the end of the label's
// connector line.
func (l Label) WithMessage(msg string) Label { l.message = msg; return l }

// WithColor pins the label's color. Unset colors are drawn from the
// report's generator when the label is added.
func (l Label) WithColor(c Color) Label { l.color = c; return l }

// WithOrder overrides the render order inside the label's file group.
// Labels without an explicit order sort as order zero, by span.
func (l Label) WithOrder(n int) Label { l.order = n; l.hasOrder = true; return l }

// WithPriority raises or lowers the label in the vertical stacking of
// message rows; higher priority rows sit closer to the source line.
func (l Label) WithPriority(n int) Label { l.priority = n; return l }

// Span returns the label's half-open offsets.
func (l Label) Span() (start, end int) {
	return l.start, l.end
}

// Message returns the label's message, empty when none was set.
func (l Label) Message() string {
	return l.message
}
