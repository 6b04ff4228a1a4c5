package source

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"
)

// ErrOutOfRange is returned when an offset does not fit the buffer under the
// active index mode.
var ErrOutOfRange = errors.New("offset out of range")

// IndexMode определяет, в каких единицах считаются офсеты.
type IndexMode uint8

const (
	// IndexRune counts offsets in Unicode scalar values.
	IndexRune IndexMode = iota
	// IndexByte counts offsets in raw bytes.
	IndexByte
)

// WidthMode определяет, как считается ширина колонки на экране.
type WidthMode uint8

const (
	// WidthUnicode measures display cells, wide runes count as two.
	WidthUnicode WidthMode = iota
	// WidthASCII treats every rune as a single cell.
	WidthASCII
)

// Options configures offset interpretation for a Map.
type Options struct {
	Index    IndexMode
	Width    WidthMode
	TabWidth int // колонок на таб, всегда > 0
}

// Position is a zero-based line plus display column.
type Position struct {
	Line   int
	Column int
}

// Map resolves offsets into one source buffer to line/column positions and
// answers reverse queries for rendering. The buffer is kept exactly as
// supplied, so caller-computed offsets stay valid: a \r before a line break
// and a leading BOM are tolerated in place as zero-width runes. Buffers
// read from disk should go through Normalize before offsets exist.
type Map struct {
	content []byte
	lineIdx []uint32 // байтовые позиции '\n'
	runeLen int
	opts    Options
}

// NewMap builds a Map over content. TabWidth below 1 falls back to 4.
func NewMap(content []byte, opts Options) *Map {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	return &Map{
		content: content,
		lineIdx: buildLineIndex(content),
		runeLen: utf8.RuneCount(content),
		opts:    opts,
	}
}

// Len reports the buffer length in active index units.
func (m *Map) Len() int {
	if m.opts.Index == IndexByte {
		return len(m.content)
	}
	return m.runeLen
}

// LineCount reports the number of lines, at least 1 even for empty content.
func (m *Map) LineCount() int {
	return len(m.lineIdx) + 1
}

// Contains reports whether offset is a valid span endpoint (offset == Len
// is allowed, spans are half-open).
func (m *Map) Contains(offset int) bool {
	return offset >= 0 && offset <= m.Len()
}

// Position resolves an offset to its zero-based line and display column.
// Tabs advance the column to the next multiple of TabWidth; other runes
// count display cells per the width mode.
func (m *Map) Position(offset int) (Position, error) {
	if !m.Contains(offset) {
		return Position{}, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, offset, m.Len())
	}
	byteOff := offset
	if m.opts.Index == IndexRune {
		byteOff = m.runeToByte(offset)
	}
	line := lineOf(m.lineIdx, byteOff)
	col := m.displayWidth(m.content[m.lineStart(line):byteOff])
	return Position{Line: line, Column: col}, nil
}

// Line returns the raw text of a zero-based line, without the newline and
// without a trailing \r. Out-of-range lines yield the empty string.
func (m *Map) Line(line int) string {
	if line < 0 || line >= m.LineCount() {
		return ""
	}
	start := m.lineStart(line)
	end := mustInt(m.lineEnd(line))
	if end > start && m.content[end-1] == '\r' {
		end--
	}
	return string(m.content[start:end])
}

// ExpandedLine returns a line with tabs expanded to spaces at tab stops.
func (m *Map) ExpandedLine(line int) string {
	raw := m.Line(line)
	if !strings.ContainsRune(raw, '\t') {
		return raw
	}
	var b strings.Builder
	col := 0
	for _, r := range raw {
		if r == '\t' {
			next := (col/m.opts.TabWidth + 1) * m.opts.TabWidth
			for ; col < next; col++ {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteRune(r)
		col += m.runeWidth(r)
	}
	return b.String()
}

// lineStart возвращает байтовый офсет начала строки.
func (m *Map) lineStart(line int) int {
	if line == 0 {
		return 0
	}
	return mustInt(m.lineIdx[line-1]) + 1
}

// lineEnd возвращает байтовый офсет конца строки (не включая '\n').
func (m *Map) lineEnd(line int) uint32 {
	if line < len(m.lineIdx) {
		return m.lineIdx[line]
	}
	return mustU32(len(m.content))
}

func (m *Map) runeToByte(offset int) int {
	if offset == m.runeLen {
		return len(m.content)
	}
	n := 0
	for i := range string(m.content) {
		if n == offset {
			return i
		}
		n++
	}
	return len(m.content)
}

func (m *Map) displayWidth(chunk []byte) int {
	col := 0
	for _, r := range string(chunk) {
		if r == '\t' {
			col = (col/m.opts.TabWidth + 1) * m.opts.TabWidth
			continue
		}
		col += m.runeWidth(r)
	}
	return col
}

func (m *Map) runeWidth(r rune) int {
	// \r перед переводом строки и BOM не занимают колонок.
	if r == '\r' || r == '\uFEFF' {
		return 0
	}
	if m.opts.Width == WidthASCII {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, mustU32(i))
		}
	}
	return out
}

// lineOf ищет бинпоиском наибольший lineIdx[i] < byteOff.
func lineOf(lineIdx []uint32, byteOff int) int {
	off := mustU32(byteOff)
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

func mustInt(n uint32) int {
	v, err := safecast.Conv[int](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
