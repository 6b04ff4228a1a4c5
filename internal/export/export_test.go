package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func sample() Document {
	return Document{
		Kind:    "Warning",
		Code:    "W03",
		Message: "something looks off",
		Location: Location{
			File: "main.lox", Start: 0, End: 22,
			StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 23,
		},
		Labels: []Label{{
			Message: "right here",
			Color:   "red",
			Location: Location{
				File: "main.lox", Start: 5, End: 6,
				StartLine: 1, StartCol: 6, EndLine: 1, EndCol: 7,
			},
		}},
		Notes: []string{"a note"},
		Helps: []string{"a help"},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sample()); err != nil {
		t.Fatalf("JSON(): %v", err)
	}
	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if got.Kind != "Warning" || got.Code != "W03" {
		t.Errorf("header fields lost: %+v", got)
	}
	if len(got.Labels) != 1 || got.Labels[0].Location.StartCol != 6 {
		t.Errorf("label fields lost: %+v", got.Labels)
	}
}

func TestJSONOmitsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, Document{Kind: "Error", Location: Location{File: "f"}}); err != nil {
		t.Fatalf("JSON(): %v", err)
	}
	for _, key := range []string{"code", "labels", "notes", "helps"} {
		if bytes.Contains(buf.Bytes(), []byte(`"`+key+`"`)) {
			t.Errorf("empty %s serialized:\n%s", key, buf.String())
		}
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Msgpack(&buf, sample()); err != nil {
		t.Fatalf("Msgpack(): %v", err)
	}
	var got Document
	if err := msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != "Warning" || len(got.Labels) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Labels[0].Color != "red" {
		t.Errorf("label color = %q", got.Labels[0].Color)
	}
}
