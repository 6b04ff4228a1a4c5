package render

import "strings"

// cell is one monospace grid position: a glyph plus its paint style.
type cell struct {
	r rune
	s Style
}

// gridRow is a growable row of cells, extended with spaces as needed.
type gridRow struct {
	cells []cell
}

func (g *gridRow) set(col int, r rune, s Style) {
	for len(g.cells) <= col {
		g.cells = append(g.cells, cell{r: ' '})
	}
	g.cells[col] = cell{r: r, s: s}
}

func (g *gridRow) get(col int) rune {
	if col < 0 || col >= len(g.cells) {
		return ' '
	}
	return g.cells[col].r
}

// fill paints [from, to) with r, skipping nothing; callers handle crossings.
func (g *gridRow) fill(from, to int, r rune, s Style) {
	for col := from; col < to; col++ {
		g.set(col, r, s)
	}
}

// writeText splats literal text starting at col, one cell per rune.
func (g *gridRow) writeText(col int, text string, s Style) {
	for _, r := range text {
		g.set(col, r, s)
		col++
	}
}

// String serializes the row, merging adjacent same-style runs so escape
// sequences wrap whole spans. Trailing blank cells are trimmed.
func (g *gridRow) String() string {
	cells := g.cells
	for len(cells) > 0 && cells[len(cells)-1].r == ' ' && cells[len(cells)-1].s.Zero() {
		cells = cells[:len(cells)-1]
	}
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].s == cells[i].s {
			run.WriteRune(cells[j].r)
			j++
		}
		b.WriteString(cells[i].s.Paint(run.String()))
		i = j
	}
	return b.String()
}
