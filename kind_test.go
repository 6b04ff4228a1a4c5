package caret

import "testing"

func TestKindByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		builtin bool
	}{
		{"error", KindError, true},
		{"warning", KindWarning, true},
		{"warn", KindWarning, true},
		{"advice", KindAdvice, true},
		{"deprecation", CustomKind("deprecation"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindByName(tt.name)
			if err != nil {
				t.Fatalf("KindByName(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("KindByName(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.Builtin() != tt.builtin {
				t.Errorf("Builtin() = %v, want %v", got.Builtin(), tt.builtin)
			}
		})
	}
	if _, err := KindByName(""); err == nil {
		t.Error("KindByName(\"\") succeeded, want error")
	}
}

func TestKindColors(t *testing.T) {
	if got := KindError.color(); got != Red {
		t.Errorf("error color = %v, want red", got)
	}
	if got := KindWarning.color(); got != Yellow {
		t.Errorf("warning color = %v, want yellow", got)
	}
	if got := KindAdvice.color(); got != Fixed(147) {
		t.Errorf("advice color = %v, want fixed(147)", got)
	}
	if got := CustomKind("lint").color(); got.Set() {
		t.Errorf("custom kind has own color %v", got)
	}
}
