package render

// Glyphs is the character table used for drawing. Two tables exist: Unicode
// box drawing and a 7-bit fallback.
type Glyphs struct {
	HBar      rune // horizontal connector
	VBar      rune // vertical connector
	Attach    rune // underline attach marker
	Underline rune // underline body
	Cross     rune // connector crossing
	LTop      rune // header corner
	LBot      rune // message row corner
	RBot      rune // closing rule corner
	MidHead   rune // later file group corner
	Arrow     rune // multiline bracket arrow tip
	MStart    rune // multiline bracket open
	MEnd      rune // multiline bracket close feeding a message row
	Break     rune // elided line marker
	LBox      rune
	RBox      rune
}

var unicodeGlyphs = Glyphs{
	HBar:      '─',
	VBar:      '│',
	Attach:    '┬',
	Underline: '─',
	Cross:     '┼',
	LTop:      '╭',
	LBot:      '╰',
	RBot:      '╯',
	MidHead:   '├',
	Arrow:     '▶',
	MStart:    '╭',
	MEnd:      '├',
	Break:     '┆',
	LBox:      '[',
	RBox:      ']',
}

var asciiGlyphs = Glyphs{
	HBar:      '-',
	VBar:      '|',
	Attach:    '^',
	Underline: '-',
	Cross:     '+',
	LTop:      ',',
	LBot:      '`',
	RBot:      '\'',
	MidHead:   '|',
	Arrow:     '>',
	MStart:    ',',
	MEnd:      '|',
	Break:     ':',
	LBox:      '[',
	RBox:      ']',
}

// GlyphsFor selects the drawing table.
func GlyphsFor(ascii bool) Glyphs {
	if ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}
