package caret

import (
	"fmt"

	"caret/internal/export"
	"caret/internal/source"
)

// Snapshot validates the report and resolves it into the machine-readable
// export document: kind, code, message and every span with one-based
// line/column positions.
func (r *Report) Snapshot() (export.Document, error) {
	maps := r.sourceMaps()
	if err := r.validate(maps); err != nil {
		return export.Document{}, err
	}

	doc := export.Document{
		Kind:     r.kind.String(),
		Message:  r.message,
		Location: location(maps[r.path], r.path, r.start, r.end),
		Notes:    r.notes,
		Helps:    r.helps,
	}
	if r.hasCode {
		doc.Code = fmt.Sprintf("%c%02d", r.kind.initial(), r.code)
	}
	for _, l := range r.labels {
		path := l.path
		if path == "" {
			path = r.path
		}
		doc.Labels = append(doc.Labels, export.Label{
			Message:  l.message,
			Color:    l.color.String(),
			Location: location(maps[path], path, l.start, l.end),
		})
	}
	return doc, nil
}

func location(m *source.Map, path string, start, end int) export.Location {
	s := mustPosition(m, start)
	e := mustPosition(m, end)
	return export.Location{
		File:      path,
		Start:     start,
		End:       end,
		StartLine: s.Line + 1,
		StartCol:  s.Column + 1,
		EndLine:   e.Line + 1,
		EndCol:    e.Column + 1,
	}
}
