// Package render turns a computed layout plan into the final report text.
// It draws into monospace cell grids so that color escapes always wrap
// whole glyph runs and never the gutter rule, then joins the rows.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"caret/internal/layout"
)

// Options is the renderer slice of the report configuration.
type Options struct {
	Color           bool
	ASCII           bool
	Compact         bool
	CrossGap        bool
	Underlines      bool
	MultilineArrows bool
}

// Line pairs one layout line with its tab-expanded source text.
type Line struct {
	layout.Line
	Text string
}

// Group is one file window: header location, per-label styles and the
// prepared lines.
type Group struct {
	Path        string
	Line, Col   int // 1-based header position
	MarginLanes int
	Styles      []Style // indexed like the group's labels
	Lines       []Line
}

// Doc is everything the renderer needs for one report.
type Doc struct {
	Kind      string
	KindStyle Style
	Code      string // already formatted, e.g. "W03"; empty when absent
	Message   string
	Groups    []Group
	Notes     []string
	Helps     []string
}

type renderer struct {
	opts   Options
	glyphs Glyphs
	out    strings.Builder

	gutterWidth int // cells before the rule, including padding spaces
	numWidth    int
}

// Render produces the complete report text, newline terminated.
func Render(d Doc, opts Options) string {
	r := &renderer{opts: opts, glyphs: GlyphsFor(opts.ASCII)}
	if !opts.Color {
		d = stripStyles(d)
	}
	r.gutterWidth, r.numWidth = gutterWidths(d.Groups)

	r.header(d)
	for i, g := range d.Groups {
		if i > 0 && len(g.Lines) == 0 {
			continue
		}
		r.group(i, g)
	}
	r.footer(d)
	return r.out.String()
}

func stripStyles(d Doc) Doc {
	d.KindStyle = Style{}
	groups := make([]Group, len(d.Groups))
	copy(groups, d.Groups)
	for i := range groups {
		groups[i].Styles = make([]Style, len(d.Groups[i].Styles))
	}
	d.Groups = groups
	return d
}

func gutterWidths(groups []Group) (gutter, num int) {
	maxLine := 1
	for _, g := range groups {
		for _, l := range g.Lines {
			if l.Number+1 > maxLine {
				maxLine = l.Number + 1
			}
		}
	}
	num = len(strconv.Itoa(maxLine))
	return num + 2, num
}

func (r *renderer) header(d Doc) {
	if d.Code != "" {
		r.out.WriteString(d.KindStyle.Paint(fmt.Sprintf("%c%s%c", r.glyphs.LBox, d.Code, r.glyphs.RBox)))
		r.out.WriteByte(' ')
	}
	r.out.WriteString(d.KindStyle.Paint(d.Kind))
	if d.Message != "" {
		r.out.WriteString(": ")
		r.out.WriteString(d.Message)
	}
	r.out.WriteByte('\n')
}

// afterRule is the spacing between the gutter rule and drawn content.
func (r *renderer) afterRule() string {
	if r.opts.Compact {
		return ""
	}
	return " "
}

func (r *renderer) barPrefix() string {
	return strings.Repeat(" ", r.gutterWidth) + string(r.glyphs.VBar)
}

func (r *renderer) blankBarRow() {
	r.out.WriteString(r.barPrefix())
	r.out.WriteByte('\n')
}

func (r *renderer) group(idx int, g Group) {
	corner := r.glyphs.LTop
	if idx > 0 {
		corner = r.glyphs.MidHead
		if !r.opts.Compact {
			r.blankBarRow()
		}
	}
	fmt.Fprintf(&r.out, "%s%c%c%c %s:%d:%d %c\n",
		strings.Repeat(" ", r.gutterWidth),
		corner, r.glyphs.HBar, r.glyphs.LBox,
		g.Path, g.Line, g.Col, r.glyphs.RBox)
	if !r.opts.Compact && len(g.Lines) > 0 {
		r.blankBarRow()
	}

	for _, line := range g.Lines {
		if line.Break {
			r.breakRow(g, line)
		}
		r.sourceRow(g, line)
		if !r.opts.Compact && len(line.Under) > 0 {
			r.underlineRow(g, line)
		}
		for _, row := range line.Rows {
			r.annotationRow(g, row)
		}
	}
}

func (r *renderer) footer(d Doc) {
	if len(d.Helps) > 0 || len(d.Notes) > 0 {
		if !r.opts.Compact {
			r.blankBarRow()
		}
		for _, h := range d.Helps {
			fmt.Fprintf(&r.out, "%s Help: %s\n", r.barPrefix(), h)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&r.out, "%s Note: %s\n", r.barPrefix(), n)
		}
	}
	if !r.opts.Compact {
		r.out.WriteString(strings.Repeat(string(r.glyphs.HBar), r.gutterWidth))
		r.out.WriteRune(r.glyphs.RBot)
		r.out.WriteByte('\n')
	}
}

// marginZone is the drawn width of the multiline bracket area, including
// its trailing spacer cell.
func (r *renderer) marginZone(lanes int) int {
	if lanes == 0 {
		return 0
	}
	return 2*lanes + 2
}

func (r *renderer) breakRow(g Group, line Line) {
	row := &gridRow{}
	for lane, c := range line.BreakMargin {
		if c.Kind == layout.MarginBar {
			row.set(2*lane, r.glyphs.VBar, g.style(c.Label))
		}
	}
	fmt.Fprintf(&r.out, "%s%c%s%s\n",
		strings.Repeat(" ", r.gutterWidth), r.glyphs.Break, r.afterRule(), row.String())
}

func (r *renderer) sourceRow(g Group, line Line) {
	row := &gridRow{}
	r.bracketCells(row, g, line.Margin)
	row.writeText(r.marginZone(g.MarginLanes), line.Text, Style{})
	fmt.Fprintf(&r.out, " %*d %c%s%s\n",
		r.numWidth, line.Number+1, r.glyphs.VBar, r.afterRule(), row.String())
}

// bracketCells draws the multiline margin for a source line: bars for
// pass-through lanes and horizontal bracket runs for lanes opening or
// closing here.
func (r *renderer) bracketCells(row *gridRow, g Group, cells []layout.MarginCell) {
	zone := r.marginZone(g.MarginLanes)
	for lane, c := range cells {
		if c.Kind == layout.MarginBar {
			row.set(2*lane, r.glyphs.VBar, g.style(c.Label))
		}
	}
	for lane, c := range cells {
		var corner rune
		switch c.Kind {
		case layout.MarginStart:
			corner = r.glyphs.MStart
		case layout.MarginEnd:
			corner = r.glyphs.MEnd
			if !c.Msg {
				corner = r.glyphs.LBot
			}
		default:
			continue
		}
		s := g.style(c.Label)
		row.set(2*lane, corner, s)
		r.horizontalRun(row, 2*lane+1, zone-2, s)
		tip := r.glyphs.Arrow
		if !r.opts.MultilineArrows {
			tip = r.glyphs.HBar
		}
		row.set(zone-2, tip, s)
	}
}

// horizontalRun fills [from, to) with hbars, resolving collisions with
// vertical bars already in the grid: a crossing glyph normally, a one-cell
// gap when CrossGap is set.
func (r *renderer) horizontalRun(row *gridRow, from, to int, s Style) {
	for col := from; col < to; col++ {
		if row.get(col) == r.glyphs.VBar {
			if r.opts.CrossGap {
				row.set(col, ' ', Style{})
			} else {
				row.set(col, r.glyphs.Cross, s)
			}
			continue
		}
		row.set(col, r.glyphs.HBar, s)
	}
}

func (r *renderer) underlineRow(g Group, line Line) {
	row := &gridRow{}
	zone := r.marginZone(g.MarginLanes)
	for lane, c := range line.UnderMargin {
		if c.Kind == layout.MarginBar {
			row.set(2*lane, r.glyphs.VBar, g.style(c.Label))
		}
	}
	for _, ul := range line.Under {
		s := g.style(ul.Label)
		if r.opts.Underlines {
			row.fill(zone+ul.StartCol, zone+ul.EndCol, r.glyphs.Underline, s)
			row.set(zone+ul.AttachCol, r.glyphs.Attach, s)
		} else {
			row.set(zone+ul.AttachCol, r.glyphs.VBar, s)
		}
	}
	fmt.Fprintf(&r.out, "%s%s%s\n", r.barPrefix(), r.afterRule(), row.String())
}

func (r *renderer) annotationRow(g Group, row layout.Row) {
	grid := &gridRow{}
	zone := r.marginZone(g.MarginLanes)
	for lane, c := range row.Margin {
		if c.Kind == layout.MarginBar {
			grid.set(2*lane, r.glyphs.VBar, g.style(c.Label))
		}
	}
	for _, b := range row.Bars {
		grid.set(zone+b.Col, r.glyphs.VBar, g.style(b.Label))
	}

	dash := 2
	if r.opts.Compact {
		dash = 1
	}

	switch row.Kind {
	case layout.RowMessage:
		s := g.style(row.Label)
		attach := zone + row.AttachCol
		end := attach
		for _, b := range row.Bars {
			if zone+b.Col > end {
				end = zone + b.Col
			}
		}
		end += dash
		r.horizontalRun(grid, attach+1, end+1, s)
		grid.set(attach, r.glyphs.LBot, s)
		grid.writeText(end+2, row.Message, Style{})
	case layout.RowMarginMessage:
		s := g.style(row.Label)
		corner := 2 * row.MarginLane
		end := zone - 1 + dash
		r.horizontalRun(grid, corner+1, end+1, s)
		grid.set(corner, r.glyphs.LBot, s)
		grid.writeText(end+2, row.Message, Style{})
	}
	fmt.Fprintf(&r.out, "%s%s%s\n", r.barPrefix(), r.afterRule(), grid.String())
}

func (g Group) style(label int) Style {
	if label < 0 || label >= len(g.Styles) {
		return Style{}
	}
	return g.Styles[label]
}
