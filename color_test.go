package caret

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"named", Red, "red"},
		{"bright named", BrightCyan, "bright cyan"},
		{"fixed", Fixed(147), "fixed(147)"},
		{"rgb", RGB(12, 34, 56), "rgb(12, 34, 56)"},
		{"primary", Primary(), "primary"},
		{"unset", Color{}, "unset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("bright magenta")
	if !ok || c != BrightMagenta {
		t.Errorf("ColorByName(bright magenta) = %v, %v", c, ok)
	}
	if c, ok := ColorByName("primary"); !ok || c != Primary() {
		t.Errorf("ColorByName(primary) = %v, %v", c, ok)
	}
	if _, ok := ColorByName("mauve"); ok {
		t.Error("ColorByName(mauve) resolved, want miss")
	}
}

func TestColorSet(t *testing.T) {
	if (Color{}).Set() {
		t.Error("zero Color reports set")
	}
	for _, c := range []Color{Red, Fixed(0), RGB(0, 0, 0), Primary()} {
		if !c.Set() {
			t.Errorf("%v reports unset", c)
		}
	}
}

func TestColorGenerator_NoDuplicates(t *testing.T) {
	g := NewColorGenerator()
	seen := make(map[Color]int)
	prev := Color{}
	for i := 0; i < 20; i++ {
		c := g.Next()
		if c == prev {
			t.Fatalf("draw %d repeats the previous color %v", i, c)
		}
		if j, ok := seen[c]; ok {
			t.Fatalf("draw %d duplicates draw %d: %v", i, j, c)
		}
		seen[c] = i
		prev = c
	}
}

func TestColorGenerator_Independent(t *testing.T) {
	a, b := NewColorGenerator(), NewColorGenerator()
	a.Next()
	a.Next()
	// Собственный курсор: свежий генератор начинает сначала.
	if got, want := b.Next(), NewColorGenerator().Next(); got != want {
		t.Errorf("fresh generators diverge: %v vs %v", got, want)
	}
}
