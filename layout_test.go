package glyphy

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"
)

func TestPlan(t *testing.T) {
	c1 := MustParseHex("#af4573")
	c2 := MustParseHex("#dd1133")
	entries := []TextEntry{
		{Text: "short", Color: c1, Scale: 20},
		{Text: "muchlongertext", Color: c2, Scale: 30},
	}

	const w = 1000.0
	plan := Plan(entries, w)

	if len(plan) != 2 {
		t.Fatalf("len(plan) = %d, want 2", len(plan))
	}

	want := []Point{
		{X: w - 630, Y: 30},
		{X: w - 630, Y: 50},
	}
	for i, p := range plan {
		if p.Position != want[i] {
			t.Errorf("plan[%d].Position = %v, want %v", i, p.Position, want[i])
		}
		if p.Entry != entries[i] {
			t.Errorf("plan[%d].Entry = %v, want %v", i, p.Entry, entries[i])
		}
	}
}

func TestPlanLineSpacingUsesPreviousScale(t *testing.T) {
	entries := []TextEntry{
		{Text: "a", Scale: 10},
		{Text: "b", Scale: 40},
		{Text: "c", Scale: 5},
		{Text: "d", Scale: 99},
	}
	plan := Plan(entries, 500)

	wantY := []float64{30, 40, 80, 85}
	for i, p := range plan {
		if p.Position.Y != wantY[i] {
			t.Errorf("plan[%d].Y = %v, want %v", i, p.Position.Y, wantY[i])
		}
	}
}

func TestPlanReferenceEntry(t *testing.T) {
	tests := []struct {
		name    string
		entries []TextEntry
		wantX   float64
	}{
		{
			name:    "single entry",
			entries: []TextEntry{{Text: "a: vec![#dd1133]", Scale: 40}},
			wantX:   800 - 40*1.5*16,
		},
		{
			name: "tie resolves to first",
			entries: []TextEntry{
				{Text: "abcd", Scale: 10},
				{Text: "wxyz", Scale: 50},
			},
			wantX: 800 - 10*1.5*4,
		},
		{
			name: "longest wins regardless of scale",
			entries: []TextEntry{
				{Text: "ab", Scale: 100},
				{Text: "abc", Scale: 1},
			},
			wantX: 800 - 1*1.5*3,
		},
		{
			name: "offset can exceed viewport",
			entries: []TextEntry{
				{Text: "0123456789", Scale: 100},
			},
			wantX: 800 - 1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Plan(tt.entries, 800)
			for i, p := range plan {
				if math.Abs(p.Position.X-tt.wantX) > 1e-9 {
					t.Errorf("plan[%d].X = %v, want %v", i, p.Position.X, tt.wantX)
				}
			}
		})
	}
}

func TestPlanEmpty(t *testing.T) {
	if plan := Plan(nil, 800); len(plan) != 0 {
		t.Errorf("Plan(nil) = %v, want empty", plan)
	}
	if plan := Plan([]TextEntry{}, 800); len(plan) != 0 {
		t.Errorf("Plan([]) = %v, want empty", plan)
	}
}

func TestPlanIdempotent(t *testing.T) {
	entries := []TextEntry{
		{Text: "first", Color: MustParseHex("#112233"), Scale: 12},
		{Text: "second line", Color: MustParseHex("#445566"), Scale: 24},
	}
	a := Plan(entries, 640)
	b := Plan(entries, 640)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Plan() not idempotent: %v != %v", a, b)
	}
}

func TestPlanConcurrent(t *testing.T) {
	entries := []TextEntry{
		{Text: "short", Scale: 20},
		{Text: "muchlongertext", Scale: 30},
	}
	want := Plan(entries, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Plan(entries, 1000); !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent Plan() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestTextLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"short", 5},
		{"a: vec![#dd1133]", 16},
		{"caf\u00e9", 4},  // precomposed
		{"cafe\u0301", 4}, // decomposed, composes under NFC
		{"日本語", 3},
	}
	for _, tt := range tests {
		if got := TextLength(tt.in); got != tt.want {
			t.Errorf("TextLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewTextEntry(t *testing.T) {
	e, err := NewTextEntry("hello", "#af4573", 40)
	if err != nil {
		t.Fatalf("NewTextEntry() error = %v", err)
	}
	if e.Text != "hello" || e.Scale != 40 || e.Color != DefaultTextColor {
		t.Errorf("NewTextEntry() = %v", e)
	}

	tests := []struct {
		name    string
		hex     string
		scale   float64
		wantErr error
	}{
		{"zero scale", "#af4573", 0, ErrInvalidScale},
		{"negative scale", "#af4573", -3, ErrInvalidScale},
		{"infinite scale", "#af4573", math.Inf(1), ErrInvalidScale},
		{"NaN scale", "#af4573", math.NaN(), ErrInvalidScale},
		{"bad color", "af4573", 10, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextEntry("x", tt.hex, tt.scale)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTextEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
