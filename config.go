package caret

// LabelAttach selects where an inline label's connector meets its underline.
type LabelAttach uint8

const (
	// AttachMiddle anchors connectors at the span midpoint.
	AttachMiddle LabelAttach = iota
	// AttachStart anchors connectors at the first span column.
	AttachStart
	// AttachEnd anchors connectors at the last span column.
	AttachEnd
)

// Config controls rendering. Values are immutable; the With methods return
// modified copies, so configs can be shared between reports freely.
type Config struct {
	crossGap        bool
	compact         bool
	underlines      bool
	multilineArrows bool
	color           bool
	tabWidth        int
	ascii           bool
	byteIndexed     bool
	labelAttach     LabelAttach
}

// DefaultConfig returns the default rendering configuration: colored
// Unicode output, rune-indexed offsets, tab width 4, underlines and
// multiline arrows on, connectors attached at span midpoints.
func DefaultConfig() Config {
	return Config{
		underlines:      true,
		multilineArrows: true,
		color:           true,
		tabWidth:        4,
	}
}

// WithCrossGap toggles crossing rendering: false draws a crossing glyph
// where connectors intersect, true leaves a one-cell gap instead.
func (c Config) WithCrossGap(v bool) Config { c.crossGap = v; return c }

// WithCompact minimizes vertical spacing: no padding rows, no blank rule
// rows, no closing rule, shorter connector stubs.
func (c Config) WithCompact(v bool) Config { c.compact = v; return c }

// WithUnderlines toggles the underline row beneath annotated source lines.
func (c Config) WithUnderlines(v bool) Config { c.underlines = v; return c }

// WithMultilineArrows toggles the arrow tips on multiline margin brackets.
func (c Config) WithMultilineArrows(v bool) Config { c.multilineArrows = v; return c }

// WithColor toggles ANSI color output.
func (c Config) WithColor(v bool) Config { c.color = v; return c }

// WithTabWidth sets the number of columns per tab stop. Values below 1
// fall back to 4.
func (c Config) WithTabWidth(n int) Config {
	if n < 1 {
		n = 4
	}
	c.tabWidth = n
	return c
}

// WithASCII switches the glyph table to the 7-bit fallback and makes every
// rune count one display cell.
func (c Config) WithASCII(v bool) Config { c.ascii = v; return c }

// WithByteIndexed interprets all span offsets as byte offsets instead of
// Unicode scalar value offsets.
func (c Config) WithByteIndexed(v bool) Config { c.byteIndexed = v; return c }

// WithLabelAttach sets the connector anchor policy for inline labels.
func (c Config) WithLabelAttach(a LabelAttach) Config { c.labelAttach = a; return c }
