package caret

import "fmt"

// Kind classifies a report. The three built-in kinds carry fixed colors; a
// custom kind has no color of its own and requires one on the report.
type Kind struct {
	name    string
	builtin bool
}

var (
	// KindError renders red.
	KindError = Kind{name: "Error", builtin: true}
	// KindWarning renders yellow.
	KindWarning = Kind{name: "Warning", builtin: true}
	// KindAdvice renders in the fixed palette color 147.
	KindAdvice = Kind{name: "Advice", builtin: true}
)

// CustomKind is a report classification outside the built-in set. Reports
// using one must set an explicit color, validation rejects them otherwise.
func CustomKind(name string) Kind {
	return Kind{name: name}
}

// KindByName resolves a kind keyword: "error", "warning" (or "warn"),
// "advice". Any other non-empty name becomes a custom kind.
func KindByName(name string) (Kind, error) {
	switch name {
	case "error":
		return KindError, nil
	case "warning", "warn":
		return KindWarning, nil
	case "advice":
		return KindAdvice, nil
	case "":
		return Kind{}, fmt.Errorf("%w: empty kind name", ErrInvalidKind)
	default:
		return CustomKind(name), nil
	}
}

// Builtin reports whether the kind is one of the fixed three.
func (k Kind) Builtin() bool {
	return k.builtin
}

func (k Kind) String() string {
	return k.name
}

// color returns the fixed color of a built-in kind. Custom kinds have none.
func (k Kind) color() Color {
	switch k {
	case KindError:
		return Red
	case KindWarning:
		return Yellow
	case KindAdvice:
		return Fixed(147)
	default:
		return Color{}
	}
}

// initial is the letter prefixing a numeric code in the header.
func (k Kind) initial() rune {
	for _, r := range k.name {
		return r
	}
	return '?'
}
