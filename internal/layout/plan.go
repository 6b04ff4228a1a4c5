package layout

import "sort"

// MarginKind classifies what a margin lane shows beside one source line.
type MarginKind uint8

const (
	// MarginNone leaves the lane cell empty.
	MarginNone MarginKind = iota
	// MarginBar continues a bracket vertically.
	MarginBar
	// MarginStart opens a bracket on this line.
	MarginStart
	// MarginEnd closes a bracket on this line.
	MarginEnd
)

// MarginCell is one lane cell beside a source line or annotation row.
type MarginCell struct {
	Label int // index into the group's labels, -1 when empty
	Kind  MarginKind
	Msg   bool // the owning label still owes a message row
}

// Underline is a horizontal mark under one span on one line. StartCol ==
// EndCol denotes a point label, drawn as a single attach marker. Underlines
// are listed in paint order; later entries win overlapping cells.
type Underline struct {
	Label     int
	StartCol  int
	EndCol    int // exclusive
	AttachCol int
}

// RowKind discriminates annotation rows below a source line.
type RowKind uint8

const (
	// RowPadding is a spacer row carrying only pending bars.
	RowPadding RowKind = iota
	// RowMessage connects an inline label's attach column to its message.
	RowMessage
	// RowMarginMessage connects a closed margin bracket to its message.
	RowMarginMessage
)

// Bar is a vertical connector cell owned by a label still waiting for its
// message row.
type Bar struct {
	Label int
	Col   int
}

// Row is one emitted annotation row. Exactly one lane (its own row) carries
// the message connector; Bars never overlap each other.
type Row struct {
	Kind       RowKind
	Label      int
	AttachCol  int
	MarginLane int
	Message    string
	Bars       []Bar
	Margin     []MarginCell
}

// Line is one rendered source line plus everything drawn beneath it.
type Line struct {
	Number      int  // zero-based source line
	Break       bool // an elided run precedes this line
	BreakMargin []MarginCell
	Margin      []MarginCell
	UnderMargin []MarginCell // lane bars beside the underline row
	Under       []Underline
	Rows        []Row
}

// Plan is the computed visual arrangement for one file group.
type Plan struct {
	MarginLanes int
	Lines       []Line
}

// multilineLane pairs a multiline label with its allocated margin lane.
type multilineLane struct {
	label int
	lane  int
}

// BuildPlan computes the arrangement for one file group. Margin lanes are
// allocated greedily leftmost-free over each multiline label's line
// interval, so bracket verticals never collide. Inline message rows are
// stacked below their source line ordered by priority descending, ties by
// render order, which puts higher-priority annotations closest to the code.
func BuildPlan(g FileGroup, opts Options) Plan {
	var p Plan
	if len(g.Labels) == 0 {
		return p
	}

	multis := assignMarginLanes(g.Labels)
	p.MarginLanes = 0
	laneOf := make(map[int]int, len(multis))
	for _, m := range multis {
		laneOf[m.label] = m.lane
		if m.lane+1 > p.MarginLanes {
			p.MarginLanes = m.lane + 1
		}
	}

	emit := emittedLines(g.Labels)
	prevEmitted := -1
	for _, lineNo := range emit {
		line := Line{
			Number: lineNo,
			Break:  prevEmitted >= 0 && lineNo > prevEmitted+1,
			Margin: marginCells(g.Labels, laneOf, p.MarginLanes, lineNo),
		}
		if line.Break {
			line.BreakMargin = crossingMargin(g.Labels, laneOf, p.MarginLanes, lineNo)
		}
		line.Under = underlines(g.Labels, lineNo, opts)
		line.Rows, line.UnderMargin = buildRows(g.Labels, laneOf, p.MarginLanes, lineNo, opts)
		p.Lines = append(p.Lines, line)
		prevEmitted = lineNo
	}
	return p
}

// assignMarginLanes gives every multiline label the lowest lane whose
// occupied line interval does not overlap the label's own interval.
func assignMarginLanes(labels []Label) []multilineLane {
	type interval struct{ lo, hi, lane int }
	var taken []interval
	var out []multilineLane

	for i, l := range labels {
		if !l.Multiline() {
			continue
		}
		// Битсетом собираем занятые дорожки на интервале лейбла.
		var used uint64
		for _, iv := range taken {
			if l.StartLine <= iv.hi && iv.lo <= l.EndLine {
				used |= 1 << iv.lane
			}
		}
		lane := 0
		for used&(1<<lane) != 0 {
			lane++
		}
		taken = append(taken, interval{lo: l.StartLine, hi: l.EndLine, lane: lane})
		out = append(out, multilineLane{label: i, lane: lane})
	}
	return out
}

// emittedLines picks the source lines worth printing: every line carrying
// an annotation, single-line gaps between them, and nothing else. Longer
// gaps are elided; the renderer shows a break row instead.
func emittedLines(labels []Label) []int {
	interesting := make(map[int]bool)
	for _, l := range labels {
		if l.Multiline() {
			interesting[l.StartLine] = true
			interesting[l.EndLine] = true
		} else {
			interesting[l.StartLine] = true
		}
	}
	keys := make([]int, 0, len(interesting))
	for k := range interesting {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var out []int
	for i, k := range keys {
		if i > 0 && k == keys[i-1]+2 {
			// Разрыв в одну строку дешевле печатать, чем прятать.
			out = append(out, k-1)
		}
		out = append(out, k)
	}
	return out
}

func marginCells(labels []Label, laneOf map[int]int, lanes, lineNo int) []MarginCell {
	if lanes == 0 {
		return nil
	}
	cells := make([]MarginCell, lanes)
	for i := range cells {
		cells[i] = MarginCell{Label: -1}
	}
	for li, lane := range laneOf {
		l := labels[li]
		switch {
		case lineNo == l.StartLine:
			cells[lane] = MarginCell{Label: li, Kind: MarginStart}
		case lineNo == l.EndLine:
			cells[lane] = MarginCell{Label: li, Kind: MarginEnd, Msg: l.Message != ""}
		case lineNo > l.StartLine && lineNo < l.EndLine:
			cells[lane] = MarginCell{Label: li, Kind: MarginBar}
		}
	}
	return cells
}

// crossingMargin reports which lanes run through an elided break row:
// every bracket opened strictly above it and not yet closed.
func crossingMargin(labels []Label, laneOf map[int]int, lanes, lineNo int) []MarginCell {
	if lanes == 0 {
		return nil
	}
	cells := make([]MarginCell, lanes)
	for i := range cells {
		cells[i] = MarginCell{Label: -1}
	}
	for li, lane := range laneOf {
		l := labels[li]
		if l.StartLine < lineNo && l.EndLine >= lineNo {
			cells[lane] = MarginCell{Label: li, Kind: MarginBar}
		}
	}
	return cells
}

// underlines collects the marks under one line in paint order: ascending
// priority first, so the highest priority label paints last and owns
// contested cells.
func underlines(labels []Label, lineNo int, opts Options) []Underline {
	var idx []int
	for i, l := range labels {
		if !l.Multiline() && l.StartLine == lineNo {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return labels[idx[a]].Priority < labels[idx[b]].Priority
	})
	out := make([]Underline, 0, len(idx))
	for _, i := range idx {
		l := labels[i]
		out = append(out, Underline{
			Label:     i,
			StartCol:  l.StartCol,
			EndCol:    l.EndCol,
			AttachCol: l.AttachCol(opts.Attach),
		})
	}
	return out
}

func buildRows(labels []Label, laneOf map[int]int, lanes, lineNo int, opts Options) ([]Row, []MarginCell) {
	// Инлайновые сообщения на этой строке: приоритет по убыванию,
	// затем порядок рендера.
	var msg []int
	for i, l := range labels {
		if !l.Multiline() && l.StartLine == lineNo && l.Message != "" {
			msg = append(msg, i)
		}
	}
	sort.SliceStable(msg, func(a, b int) bool {
		return labels[msg[a]].Priority > labels[msg[b]].Priority
	})

	// Мультилайны, закрывающиеся на этой строке, с сообщением.
	var ends []int
	for li := range laneOf {
		l := labels[li]
		if l.EndLine == lineNo && l.Message != "" {
			ends = append(ends, li)
		}
	}
	// Внутренние дорожки закрываются первыми.
	sort.Slice(ends, func(a, b int) bool {
		return laneOf[ends[a]] > laneOf[ends[b]]
	})

	margin := func(doneEnds int) []MarginCell {
		if lanes == 0 {
			return nil
		}
		cells := make([]MarginCell, lanes)
		for i := range cells {
			cells[i] = MarginCell{Label: -1}
		}
		for li, lane := range laneOf {
			l := labels[li]
			active := lineNo >= l.StartLine && lineNo < l.EndLine
			pendingEnd := l.EndLine == lineNo && l.Message != "" && !endDone(ends, doneEnds, li)
			if active || pendingEnd {
				cells[lane] = MarginCell{Label: li, Kind: MarginBar}
			}
		}
		return cells
	}

	var rows []Row
	pendingBars := func(from int) []Bar {
		var bars []Bar
		for _, i := range msg[from:] {
			bars = append(bars, Bar{Label: i, Col: labels[i].AttachCol(opts.Attach)})
		}
		return bars
	}

	for k, i := range msg {
		l := labels[i]
		rows = append(rows, Row{
			Kind:      RowMessage,
			Label:     i,
			AttachCol: l.AttachCol(opts.Attach),
			Message:   l.Message,
			Bars:      pendingBars(k + 1),
			Margin:    margin(0),
		})
		more := k+1 < len(msg) || len(ends) > 0
		if !opts.Compact && more {
			rows = append(rows, Row{
				Kind:   RowPadding,
				Label:  -1,
				Bars:   pendingBars(k + 1),
				Margin: margin(0),
			})
		}
	}

	for k, li := range ends {
		if !opts.Compact {
			rows = append(rows, Row{
				Kind:   RowPadding,
				Label:  -1,
				Margin: margin(k),
			})
		}
		rows = append(rows, Row{
			Kind:       RowMarginMessage,
			Label:      li,
			MarginLane: laneOf[li],
			Message:    labels[li].Message,
			Margin:     margin(k),
		})
	}
	return rows, margin(0)
}

func endDone(ends []int, done int, label int) bool {
	for _, li := range ends[:done] {
		if li == label {
			return true
		}
	}
	return false
}
