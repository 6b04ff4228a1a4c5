package source

import (
	"bytes"
	"testing"
)

func TestNormalize(t *testing.T) {
	in := []byte{0xEF, 0xBB, 0xBF, 'a', '\r', '\n', 'b'}
	if got := Normalize(in); !bytes.Equal(got, []byte("a\nb")) {
		t.Errorf("Normalize = %q, want %q", got, "a\nb")
	}
}

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{name: "no carriage returns", in: "a\nb", want: "a\nb", changed: false},
		{name: "crlf pairs collapse", in: "a\r\nb\r\n", want: "a\nb\n", changed: true},
		{name: "lone cr preserved", in: "a\rb", want: "a\rb", changed: false},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\rc\n", changed: true},
		{name: "empty", in: "", want: "", changed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("removeBOM = %q, %v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM on plain content = %q, %v", got, had)
	}
}
