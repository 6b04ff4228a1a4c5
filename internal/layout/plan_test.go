package layout

import (
	"math/rand"
	"testing"
)

func TestAssignMarginLanes_NoOverlap(t *testing.T) {
	labels := []Label{
		{StartLine: 0, EndLine: 4},
		{StartLine: 2, EndLine: 6},
		{StartLine: 5, EndLine: 8},
		{StartLine: 9, EndLine: 10},
	}
	lanes := assignMarginLanes(labels)
	if len(lanes) != 4 {
		t.Fatalf("got %d lane assignments, want 4", len(lanes))
	}
	// 0-4 and 2-6 overlap: distinct lanes. 5-8 overlaps 2-6 but not 0-4:
	// reuses lane 0. 9-10 overlaps nothing: lane 0.
	want := []int{0, 1, 0, 0}
	for i, m := range lanes {
		if m.lane != want[i] {
			t.Errorf("label %d assigned lane %d, want %d", i, m.lane, want[i])
		}
	}
}

func TestAssignMarginLanes_NeverCollides(t *testing.T) {
	// Случайные интервалы: инвариант — на одной дорожке нет пересечений.
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(12)
		labels := make([]Label, n)
		for i := range labels {
			start := rng.Intn(30)
			labels[i] = Label{StartLine: start, EndLine: start + 1 + rng.Intn(10)}
		}
		lanes := assignMarginLanes(labels)
		for i := range lanes {
			for j := i + 1; j < len(lanes); j++ {
				if lanes[i].lane != lanes[j].lane {
					continue
				}
				a, b := labels[lanes[i].label], labels[lanes[j].label]
				if a.StartLine <= b.EndLine && b.StartLine <= a.EndLine {
					t.Fatalf("trial %d: labels %d and %d share lane %d with overlapping intervals [%d,%d] [%d,%d]",
						trial, lanes[i].label, lanes[j].label, lanes[i].lane,
						a.StartLine, a.EndLine, b.StartLine, b.EndLine)
				}
			}
		}
	}
}

func TestEmittedLines_Elision(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   []int
	}{
		{
			name:   "single line",
			labels: []Label{{StartLine: 3, EndLine: 3}},
			want:   []int{3},
		},
		{
			name:   "one line gap is filled",
			labels: []Label{{StartLine: 1, EndLine: 1}, {StartLine: 3, EndLine: 3}},
			want:   []int{1, 2, 3},
		},
		{
			name:   "long gap is elided",
			labels: []Label{{StartLine: 1, EndLine: 1}, {StartLine: 9, EndLine: 9}},
			want:   []int{1, 9},
		},
		{
			name:   "multiline endpoints only",
			labels: []Label{{StartLine: 2, EndLine: 20}},
			want:   []int{2, 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emittedLines(tt.labels)
			if len(got) != len(tt.want) {
				t.Fatalf("emittedLines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("emittedLines() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestBuildPlan_MessageRowOrder(t *testing.T) {
	g := FileGroup{Path: "f", Labels: []Label{
		{ID: 0, StartLine: 0, EndLine: 0, StartCol: 5, EndCol: 6, Message: "first"},
		{ID: 1, StartLine: 0, EndLine: 0, StartCol: 20, EndCol: 21, Message: "second"},
	}}
	p := BuildPlan(g, Options{Underlines: true})
	if len(p.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(p.Lines))
	}
	rows := p.Lines[0].Rows
	// message, padding, message.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3: %+v", len(rows), rows)
	}
	if rows[0].Kind != RowMessage || rows[0].Message != "first" {
		t.Errorf("row 0 = %+v, want first message", rows[0])
	}
	if rows[1].Kind != RowPadding {
		t.Errorf("row 1 = %+v, want padding", rows[1])
	}
	if rows[2].Kind != RowMessage || rows[2].Message != "second" {
		t.Errorf("row 2 = %+v, want second message", rows[2])
	}
	// The first message row carries the pending bar of the second label.
	if len(rows[0].Bars) != 1 || rows[0].Bars[0].Col != 20 {
		t.Errorf("row 0 bars = %+v, want one bar at col 20", rows[0].Bars)
	}
	if len(rows[2].Bars) != 0 {
		t.Errorf("last row carries bars: %+v", rows[2].Bars)
	}
}

func TestBuildPlan_PriorityPicksClosestRow(t *testing.T) {
	g := FileGroup{Path: "f", Labels: []Label{
		{ID: 0, StartLine: 0, EndLine: 0, StartCol: 2, EndCol: 3, Message: "low", Priority: 0},
		{ID: 1, StartLine: 0, EndLine: 0, StartCol: 8, EndCol: 9, Message: "high", Priority: 10},
	}}
	p := BuildPlan(g, Options{Underlines: true})
	rows := p.Lines[0].Rows
	if rows[0].Message != "high" {
		t.Errorf("first message row = %q, want the high priority label", rows[0].Message)
	}
}

func TestBuildPlan_CompactSkipsPadding(t *testing.T) {
	g := FileGroup{Path: "f", Labels: []Label{
		{ID: 0, StartLine: 0, EndLine: 0, StartCol: 5, EndCol: 6, Message: "a"},
		{ID: 1, StartLine: 0, EndLine: 0, StartCol: 20, EndCol: 21, Message: "b"},
	}}
	p := BuildPlan(g, Options{Compact: true, Underlines: true})
	rows := p.Lines[0].Rows
	if len(rows) != 2 {
		t.Fatalf("compact plan has %d rows, want 2: %+v", len(rows), rows)
	}
	for _, r := range rows {
		if r.Kind == RowPadding {
			t.Error("compact plan contains padding row")
		}
	}
}

func TestBuildPlan_MultilineBracket(t *testing.T) {
	g := FileGroup{Path: "f", Labels: []Label{
		{ID: 0, StartLine: 0, EndLine: 2, StartCol: 4, EndCol: 2, Message: "spans lines"},
	}}
	p := BuildPlan(g, Options{Underlines: true})
	if p.MarginLanes != 1 {
		t.Fatalf("MarginLanes = %d, want 1", p.MarginLanes)
	}
	if len(p.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(p.Lines))
	}
	if p.Lines[0].Margin[0].Kind != MarginStart {
		t.Errorf("line 0 margin = %+v, want start", p.Lines[0].Margin[0])
	}
	if p.Lines[1].Margin[0].Kind != MarginBar {
		t.Errorf("line 1 margin = %+v, want bar", p.Lines[1].Margin[0])
	}
	if p.Lines[2].Margin[0].Kind != MarginEnd {
		t.Errorf("line 2 margin = %+v, want end", p.Lines[2].Margin[0])
	}
	last := p.Lines[2].Rows
	if len(last) != 2 || last[1].Kind != RowMarginMessage || last[1].Message != "spans lines" {
		t.Fatalf("end line rows = %+v, want padding plus margin message", last)
	}
}

func TestBuildPlan_EmptyGroup(t *testing.T) {
	p := BuildPlan(FileGroup{Path: "f"}, Options{})
	if len(p.Lines) != 0 || p.MarginLanes != 0 {
		t.Errorf("empty group produced plan %+v", p)
	}
}

func TestBuildPlan_BreakMargin(t *testing.T) {
	g := FileGroup{Path: "f", Labels: []Label{
		{ID: 0, StartLine: 0, EndLine: 10, Message: "long"},
	}}
	p := BuildPlan(g, Options{})
	if len(p.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(p.Lines))
	}
	end := p.Lines[1]
	if !end.Break {
		t.Fatal("second emitted line should follow a break")
	}
	if len(end.BreakMargin) != 1 || end.BreakMargin[0].Kind != MarginBar {
		t.Errorf("break margin = %+v, want a continuing bar", end.BreakMargin)
	}
}
