// Package export produces machine-readable encodings of a validated
// diagnostic report: a stable JSON document and its msgpack equivalent.
package export

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Location is a resolved span: raw offsets plus one-based line/column
// positions for both endpoints.
type Location struct {
	File      string `json:"file"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// Label is one annotated sub-span.
type Label struct {
	Message  string   `json:"message,omitempty"`
	Color    string   `json:"color,omitempty"`
	Location Location `json:"location"`
}

// Document is the root of the export format.
type Document struct {
	Kind     string   `json:"kind"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message,omitempty"`
	Location Location `json:"location"`
	Labels   []Label  `json:"labels,omitempty"`
	Notes    []string `json:"notes,omitempty"`
	Helps    []string `json:"helps,omitempty"`
}

// JSON writes the document as indented JSON.
func JSON(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Msgpack writes the document in msgpack framing.
func Msgpack(w io.Writer, d Document) error {
	return msgpack.NewEncoder(w).Encode(d)
}
