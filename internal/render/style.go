package render

import "github.com/fatih/color"

// Style paints a span of glyphs or text. The zero value paints nothing.
// Styles wrap per-instance fatih colors with color forced on, so output
// does not depend on the process environment; disabling color is done by
// passing zero styles, never by the package-global toggle.
type Style struct {
	c *color.Color
}

// NewStyle builds a style from SGR attributes.
func NewStyle(attrs ...color.Attribute) Style {
	c := color.New(attrs...)
	c.EnableColor()
	return Style{c: c}
}

// RGBStyle builds a 24-bit foreground style.
func RGBStyle(r, g, b int) Style {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return Style{c: c}
}

// FixedStyle builds an 8-bit palette foreground style.
func FixedStyle(n int) Style {
	c := color.New(38, 5, color.Attribute(n))
	c.EnableColor()
	return Style{c: c}
}

// Zero reports whether the style paints nothing.
func (s Style) Zero() bool {
	return s.c == nil
}

// Paint wraps text in the style's escape codes. Zero styles return the
// text untouched, so stripped output never carries stray escapes.
func (s Style) Paint(text string) string {
	if s.c == nil || text == "" {
		return text
	}
	return s.c.Sprint(text)
}
