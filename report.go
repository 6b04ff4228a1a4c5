// Package caret renders compiler-style diagnostic reports: a primary span
// over a source buffer plus labeled sub-spans, laid out as aligned text with
// a line-number gutter, underlines, connector lanes and multiline brackets.
//
// A report is built once, extended through append-only calls, validated,
// and rendered. Validation is the only failing step; rendering a validated
// report always succeeds.
package caret

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"caret/internal/layout"
	"caret/internal/render"
	"caret/internal/source"
)

// Report is one diagnostic: kind, primary span, labels, notes and helps.
// Construct with NewReport, extend with the Add methods, then Render, Write
// or Print.
type Report struct {
	kind       Kind
	color      Color // явный цвет, обязателен для кастомных kind
	code       int
	hasCode    bool
	message    string
	path       string
	start, end int
	config     Config
	files      map[string]string
	labels     []Label
	notes      []string
	helps      []string
	gen        *ColorGenerator
}

// NewReport starts a report of the given kind over the span [start, end) in
// the primary source. Offsets are rune offsets unless the config switches
// to byte indexing.
func NewReport(kind Kind, path, content string, start, end int) *Report {
	return &Report{
		kind:   kind,
		path:   path,
		start:  start,
		end:    end,
		config: DefaultConfig(),
		files:  map[string]string{path: content},
		gen:    NewColorGenerator(),
	}
}

// WithConfig replaces the report's rendering configuration.
func (r *Report) WithConfig(c Config) *Report {
	r.config = c
	return r
}

// WithCode attaches a numeric code, shown bracketed in the header as the
// kind initial plus the zero-padded number.
func (r *Report) WithCode(code int) *Report {
	r.code = code
	r.hasCode = true
	return r
}

// WithMessage sets the header message.
func (r *Report) WithMessage(msg string) *Report {
	r.message = msg
	return r
}

// WithColor sets the report color. Required for custom kinds, rejected for
// built-in kinds, which have fixed colors.
func (r *Report) WithColor(c Color) *Report {
	r.color = c
	return r
}

// AddSource registers another file labels may point into.
func (r *Report) AddSource(path, content string) *Report {
	r.files[path] = content
	return r
}

// AddLabel appends a label. Labels without an explicit color get the next
// color from the report's generator here, so adding order decides coloring.
func (r *Report) AddLabel(l Label) *Report {
	if !l.color.Set() {
		l.color = r.gen.Next()
	}
	r.labels = append(r.labels, l)
	return r
}

// Label constructs and appends a label over [start, end) with a message,
// drawing its color from the report's generator. Labels needing a path,
// an explicit color, an order or a priority are built with NewLabel and
// its With methods and added through AddLabel.
func (r *Report) Label(start, end int, msg string) *Report {
	return r.AddLabel(NewLabel(start, end).WithMessage(msg))
}

// AddNote appends a note to the footer.
func (r *Report) AddNote(note string) *Report {
	r.notes = append(r.notes, note)
	return r
}

// AddHelp appends a help line to the footer. Helps print before notes.
func (r *Report) AddHelp(help string) *Report {
	r.helps = append(r.helps, help)
	return r
}

// Validate checks the kind/color rules, the primary span and every label.
// All failures are reported at once. Validating twice is a no-op: the
// report is not modified.
func (r *Report) Validate() error {
	return r.validate(r.sourceMaps())
}

// Render produces the complete report text. It validates first; after a
// successful Validate, rendering cannot fail.
func (r *Report) Render() (string, error) {
	maps := r.sourceMaps()
	if err := r.validate(maps); err != nil {
		return "", err
	}
	return r.render(maps), nil
}

// Write renders the report and writes it to w as one bulk write.
func (r *Report) Write(w io.Writer) error {
	text, err := r.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// Print renders the report to stdout, or stderr when toStderr is set.
func (r *Report) Print(toStderr bool) error {
	w := io.Writer(os.Stdout)
	if toStderr {
		w = os.Stderr
	}
	return r.Write(w)
}

func (r *Report) sourceMaps() map[string]*source.Map {
	opts := source.Options{TabWidth: r.config.tabWidth}
	if r.config.byteIndexed {
		opts.Index = source.IndexByte
	}
	if r.config.ascii {
		opts.Width = source.WidthASCII
	}
	maps := make(map[string]*source.Map, len(r.files))
	for path, content := range r.files {
		maps[path] = source.NewMap([]byte(content), opts)
	}
	return maps
}

func (r *Report) validate(maps map[string]*source.Map) error {
	var errs *multierror.Error

	if r.kind.builtin && r.color.Set() {
		errs = multierror.Append(errs, fmt.Errorf(
			"%w: %s has a fixed color, explicit color not allowed", ErrInvalidKind, r.kind))
	}
	if !r.kind.builtin && !r.color.Set() {
		errs = multierror.Append(errs, fmt.Errorf(
			"%w: custom kind %q requires an explicit color", ErrInvalidKind, r.kind))
	}

	if err := checkSpan(maps[r.path], r.start, r.end); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("primary span: %w", err))
	}
	for i, l := range r.labels {
		path := l.path
		if path == "" {
			path = r.path
		}
		m, ok := maps[path]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf(
				"label %d: %w: %q", i, ErrUnknownFile, path))
			continue
		}
		if err := checkSpan(m, l.start, l.end); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("label %d: %w", i, err))
		}
	}
	return errs.ErrorOrNil()
}

func checkSpan(m *source.Map, start, end int) error {
	if start > end {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidSpan, start, end)
	}
	if !m.Contains(start) || !m.Contains(end) {
		return fmt.Errorf("%w: [%d, %d) not in [0, %d]", ErrInvalidSpan, start, end, m.Len())
	}
	return nil
}

// render assumes validated input: every Position call below is in range.
func (r *Report) render(maps map[string]*source.Map) string {
	kindColor := r.kind.color()
	if r.color.Set() {
		kindColor = r.color
	}
	kindStyle := kindColor.style(render.Style{})

	resolved := make([]layout.Label, len(r.labels))
	for i, l := range r.labels {
		resolved[i] = r.resolve(i, l, maps)
	}
	groups := layout.Group(resolved, r.path)

	lopts := layout.Options{
		Attach:     layoutAttach(r.config.labelAttach),
		Compact:    r.config.compact,
		Underlines: r.config.underlines,
	}

	doc := render.Doc{
		Kind:      r.kind.String(),
		KindStyle: kindStyle,
		Message:   r.message,
		Notes:     r.notes,
		Helps:     r.helps,
	}
	if r.hasCode {
		doc.Code = fmt.Sprintf("%c%02d", r.kind.initial(), r.code)
	}

	for gi, g := range groups {
		m := maps[g.Path]
		plan := layout.BuildPlan(g, lopts)

		head := mustPosition(m, r.start)
		if gi > 0 {
			if len(g.Labels) == 0 {
				continue
			}
			head = mustPosition(m, g.Labels[0].Start)
		}

		styles := make([]render.Style, len(g.Labels))
		for j, l := range g.Labels {
			styles[j] = r.labels[l.ID].color.style(kindStyle)
		}
		lines := make([]render.Line, len(plan.Lines))
		for j, pl := range plan.Lines {
			lines[j] = render.Line{Line: pl, Text: m.ExpandedLine(pl.Number)}
		}
		doc.Groups = append(doc.Groups, render.Group{
			Path:        g.Path,
			Line:        head.Line + 1,
			Col:         head.Column + 1,
			MarginLanes: plan.MarginLanes,
			Styles:      styles,
			Lines:       lines,
		})
	}

	return render.Render(doc, render.Options{
		Color:           r.config.color,
		ASCII:           r.config.ascii,
		Compact:         r.config.compact,
		CrossGap:        r.config.crossGap,
		Underlines:      r.config.underlines,
		MultilineArrows: r.config.multilineArrows,
	})
}

// resolve turns a label's offsets into line/column geometry. The end line
// is taken from the last covered offset, so a span ending just past a
// newline still closes on the line it covers.
func (r *Report) resolve(id int, l Label, maps map[string]*source.Map) layout.Label {
	path := l.path
	if path == "" {
		path = r.path
	}
	m := maps[path]

	startPos := mustPosition(m, l.start)
	last := l.end
	if last > l.start {
		last--
	}
	lastPos := mustPosition(m, last)
	endPos := mustPosition(m, l.end)
	endCol := endPos.Column
	if endPos.Line != lastPos.Line {
		endCol = lastPos.Column + 1
	}

	return layout.Label{
		ID:        id,
		Path:      path,
		Start:     l.start,
		End:       l.end,
		StartLine: startPos.Line,
		EndLine:   lastPos.Line,
		StartCol:  startPos.Column,
		EndCol:    endCol,
		Message:   l.message,
		Order:     l.order,
		HasOrder:  l.hasOrder,
		Priority:  l.priority,
	}
}

func mustPosition(m *source.Map, offset int) source.Position {
	p, err := m.Position(offset)
	if err != nil {
		panic(fmt.Errorf("position after validation: %w", err))
	}
	return p
}

func layoutAttach(a LabelAttach) layout.Attach {
	switch a {
	case AttachStart:
		return layout.AttachStart
	case AttachEnd:
		return layout.AttachEnd
	default:
		return layout.AttachMiddle
	}
}
