package caret

import (
	"fmt"

	"github.com/fatih/color"

	"caret/internal/render"
)

// colorKind discriminates the Color union.
type colorKind uint8

const (
	colorUnset colorKind = iota
	colorPrimary
	colorNamed
	colorFixed
	colorRGB
)

// Color is an immutable terminal color value: a named palette color, an
// 8-bit palette index, an RGB triple, or the primary marker which resolves
// to the report's own kind color. The zero value means "unset" and falls
// back to the report's color generator.
type Color struct {
	kind    colorKind
	attr    color.Attribute
	name    string
	fixed   uint8
	r, g, b uint8
}

// Primary resolves to the color of the report's kind at render time.
func Primary() Color {
	return Color{kind: colorPrimary, name: "primary"}
}

// Fixed is an 8-bit terminal palette color.
func Fixed(n uint8) Color {
	return Color{kind: colorFixed, fixed: n}
}

// RGB is a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

func named(name string, attr color.Attribute) Color {
	return Color{kind: colorNamed, name: name, attr: attr}
}

// The sixteen standard terminal colors.
var (
	Black         = named("black", color.FgBlack)
	Red           = named("red", color.FgRed)
	Green         = named("green", color.FgGreen)
	Yellow        = named("yellow", color.FgYellow)
	Blue          = named("blue", color.FgBlue)
	Magenta       = named("magenta", color.FgMagenta)
	Cyan          = named("cyan", color.FgCyan)
	White         = named("white", color.FgWhite)
	BrightBlack   = named("bright black", color.FgHiBlack)
	BrightRed     = named("bright red", color.FgHiRed)
	BrightGreen   = named("bright green", color.FgHiGreen)
	BrightYellow  = named("bright yellow", color.FgHiYellow)
	BrightBlue    = named("bright blue", color.FgHiBlue)
	BrightMagenta = named("bright magenta", color.FgHiMagenta)
	BrightCyan    = named("bright cyan", color.FgHiCyan)
	BrightWhite   = named("bright white", color.FgHiWhite)
)

// ColorByName resolves one of the sixteen standard color names, or
// "primary". Names are matched exactly.
func ColorByName(name string) (Color, bool) {
	if name == "primary" {
		return Primary(), true
	}
	for _, c := range []Color{
		Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
		BrightBlack, BrightRed, BrightGreen, BrightYellow,
		BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
	} {
		if c.name == name {
			return c, true
		}
	}
	return Color{}, false
}

// Set reports whether the color carries a value.
func (c Color) Set() bool {
	return c.kind != colorUnset
}

func (c Color) String() string {
	switch c.kind {
	case colorPrimary:
		return "primary"
	case colorNamed:
		return c.name
	case colorFixed:
		return fmt.Sprintf("fixed(%d)", c.fixed)
	case colorRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	default:
		return "unset"
	}
}

// style lowers the color to a renderer style. primaryStyle substitutes for
// the primary marker; unset colors paint nothing.
func (c Color) style(primaryStyle render.Style) render.Style {
	switch c.kind {
	case colorPrimary:
		return primaryStyle
	case colorNamed:
		return render.NewStyle(c.attr)
	case colorFixed:
		return render.FixedStyle(int(c.fixed))
	case colorRGB:
		return render.RGBStyle(int(c.r), int(c.g), int(c.b))
	default:
		return render.Style{}
	}
}
